// Package config loads the migrator's YAML configuration.
//
// Every field is optional; missing values take the defaults applied by
// Parse. Command line flags override the loaded values.
package config
