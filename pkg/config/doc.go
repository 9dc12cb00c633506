/*
Package config manages configuration parsing and validation for stagesync.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |  JSON   | |    HCL    |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads the three run parameters: destination root, ignore list, mapping manifest
- Validates configuration values and cleans paths
- Supports multiple config formats, dispatched by file extension

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax (.stagesync tries YAML then HCL)
3. Validates required fields and path shape
4. Provides the validated config to the operation package

📝 Design Philosophy:
The config package is the source of truth for a run. Everything the
synchronizer does is parameterized by the three named fields it carries, so
tests can supply synthetic configurations against temporary directories
instead of relying on hard-coded constants. Ignore prefixes are treated as
opaque literal strings and never normalized here: a trailing separator in a
prefix is part of the contract.
*/
package config
