// Package config loads lispedit settings.
//
// Settings are merged from several layers, lowest priority first:
//
//	defaults     built into the binary
//	user         ~/.config/lispedit/config.{toml,yaml,yml,json}
//	project      ./.lispedit.{toml,yaml,yml,json}
//	explicit     the file named with -config
//	environment  LISPEDIT_* variables
//
// Maps merge key by key, so a project file that only sets editor.tabWidth
// keeps the user's theme. The merged result is decoded into Config and
// validated; errors name the offending setting.
//
// Example TOML:
//
//	[editor]
//	tabWidth = 4
//	killRingSize = 30
//
//	[theme]
//	keyword = "#c678dd"
//
//	[keys]
//	"C-c C-e" = "end-of-line"
//
//	[script]
//	path = "~/lisp/init.lua"
package config
