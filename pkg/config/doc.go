/*
Package config loads the retone configuration file.

🎯 Purpose:
- Name the input document and the output copy
- Describe the record syntax and how records are matched on replacement
- Configure the text-generation call (model, temperature, token cap, tone guide)
- Carry hand-written override bodies for the manual patch pass

📄 Formats (picked by file extension through the Parser registry):
- .hcl           hashicorp HCL
- .yaml / .yml   YAML, unknown keys rejected
- .json          JSON, unknown keys rejected

Example (.retone.hcl):

	input  = "data/learning.ts"
	output = "data/learning_rewritten.ts"
	match  = "key"

	transform {
	  model             = "gemini-2.0-flash-exp"
	  temperature       = 0.7
	  max_output_tokens = 2048
	  guidelines_file   = "tone.md"
	}

	override "setting-up-station" {
	  title     = "Setting Up Your Station"
	  body_file = "overrides/setting-up-station.md"
	}

Relative paths are resolved against the directory of the config file. The API
key is never read from the file; transform.api_key_env names the environment
variable that holds it.
*/
package config
