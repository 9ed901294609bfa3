// Package cli wires together the Cobra command tree for the veil binary.
//
// It defines the root redact command and all subcommands (config, infotypes,
// doctor, version), binds flags, reads configuration, invokes the remote
// redaction service, and returns deterministic exit codes for scripting.
package cli
