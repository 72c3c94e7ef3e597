/*
Package record finds article records embedded in a source document.

A record is a literal object in a data module:

	{
	  id: 'grind-size-guide',
	  title: 'Grind Size Guide',
	  content: `# Grind Size ...`,
	  readTime: 5,
	}

🎯 Purpose:
- Locate every complete record in document order
- Keep the raw id, title and body text exactly as written
- Remember where each body sits so it can be replaced in place

🔍 Matching rules:
- id and title are single or double quoted strings with backslash escapes
- the body is a template literal without ${...} interpolation
- // line comments between the fields are allowed
- anything else (a missing field, an interpolated body, an unterminated fence) is
  skipped, never reported as an error; Scan counts those spans so callers can see them
*/
package record
