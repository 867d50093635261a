// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. The resulting Config
// is built once at startup and handed to constructors; nothing in the
// application reads configuration from globals.
package config
