// Package config defines the Helios configuration structure and its
// loading pipeline: YAML file, defaults, environment variable
// overrides, then validation.
package config
