/*
Package config loads the optional presentation settings for textmod.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+--+   +--+--+     +--+--+   +--+--+
	| HCL |   | JSON|     | TOML|   | YAML|
	+-----+   +-----+     +-----+   +-----+

🎯 Purpose:
- Finds a config file (explicit path or XDG config dirs)
- Picks a parser by file extension
- Rejects unknown fields and fills in defaults

🔄 Flow:
1. Resolve: explicit path, else textmod/config.<ext> under the XDG config dirs
2. Load: read through afero, parse, validate
3. No file at all: Default()

⚡ Settings:
- preview_length: characters of the result shown in the preview (default 200)
- ellipsis: marker appended to a truncated preview (default "...")
- no_color: disable ANSI styling
- no_banner: skip the start-up banner

🔍 Example (config.hcl):

	preview_length = 80
	ellipsis       = "…"
	no_color       = true

The transformations themselves are not configurable.
*/
package config
