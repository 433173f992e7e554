// Package config provides the tool settings of the rogue-overrides CLI.
//
// # Settings Sources
//
// Settings are read, in increasing priority, from built-in defaults, the
// settings file, ROGUE_OVERRIDES_* environment variables and command line
// flags bound by the CLI.
//
// The settings file is config.yaml in $HOME/.rogue-overrides or in the
// working directory, or the file passed with --config:
//
//	overlay:
//	  path: ./overlays/dev.yaml
//	log:
//	  level: debug
//
// A missing default settings file is not an error. A missing --config file is.
//
// Settings only locate the overlay. Overlay files are parsed by the overrides
// package, whose field names are case sensitive.
package config
