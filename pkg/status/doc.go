/*
Package status writes output documents and reports what changed on disk.

🎯 Purpose:
- Read the input and the last good output
- Write output files atomically (temp file, then rename)
- Tell whether an output file is new, modified or unchanged
- Fingerprint document content with blake3

📝 The input file is only ever read here. Callers pick a distinct output path,
and config validation refuses an output path equal to the input.
*/
package status
