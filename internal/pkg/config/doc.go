// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, validated, and completed with secrets
// taken from the environment. The resulting structs are passed to the
// components that need them.
package config
