// Package profile loads reusable redaction presets from YAML files.
//
// A profile bundles the info types, minimum likelihood, and replacement
// string for a recurring redaction job so they do not have to be repeated on
// every invocation. Values given explicitly on the command line always win
// over profile values; a profile never selects the string-vs-file mode.
package profile
