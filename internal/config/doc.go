// Package config provides configuration loading, merging, and validation
// for the document server.
//
// The configuration record is assembled from multiple sources in the
// following priority order (later sources override fields set earlier):
//  1. Config file (JSON or YAML)
//  2. Environment variables (CRYPTPAD_ prefix)
//  3. Command-line flags
//
// The merged [PartialConfig] is validated once by [Load], which fills
// defaults and returns an immutable [Config] or an error naming every bad
// field. The main entry point is [GetConfig].
package config
