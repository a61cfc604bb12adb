// Package config handles configuration loading for inkwell.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable
// expansion. The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from INKWELL_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/inkwell/inkwell.yaml
//  3. ~/.config/inkwell/inkwell.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	server:
//	  http_addr: "${INKWELL_ADDR}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:4000"  # GraphQL API and playground
//
// Seed data:
//
//	seed:
//	  path: "/etc/inkwell/seed.yaml"  # optional; .yaml or .toml
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
