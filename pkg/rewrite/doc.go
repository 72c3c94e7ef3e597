/*
Package rewrite runs the extract, transform and reinject pipeline over a document.

	+-----------+     +-------------+     +------------+
	| Extractor | --> | Transformer | --> |  Replacer  |
	| (records) |     | (new body)  |     | (document) |
	+-----------+     +-------------+     +------------+

🔄 Flow:
1. Scan the source for records (skipped spans are counted, not fatal)
2. For each record, in document order, ask the Transformer for a new body
3. Replace the body in the accumulating document; the source string is never changed
4. Return the final document with one Outcome per record

⚠️ Failure policy:
- A Transformer error keeps the original body and processing moves on
- A record the Replacer cannot find is left alone and reported as unmatched
- Nothing is retried; Patch applies hand-written bodies afterwards

Records are handled one at a time on the calling goroutine.
*/
package rewrite
