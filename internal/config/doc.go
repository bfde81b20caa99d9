// Package config provides layered application configuration: built-in
// defaults, an optional YAML file, and COMPARE_-prefixed environment
// variable overrides, validated with struct tags.
package config
