// Package config loads and merges veil configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (VEIL_ENDPOINT, VEIL_API_KEY,
//     VEIL_TIMEOUT_SECONDS, VEIL_VERBOSE)
//  3. Config file ($XDG_CONFIG_HOME/veil/config.json)
//  4. Built-in defaults
//
// A .env file in the working directory is loaded into the environment
// best-effort before merging. Use [Load] to obtain a merged [Config],
// [Save] to write the config file, and [SetField] to update a single key.
package config
