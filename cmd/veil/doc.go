// Veil is a CLI for redacting sensitive data through a remote DLP service.
//
// It sends text or image content to the service's content:redact endpoint in a
// single synchronous call and writes the redacted result to stdout or a file,
// with deterministic exit codes suitable for scripting.
//
// Usage:
//
//	veil -s "call me at 555-1234"                  # redact a string
//	veil -s "text" --info-types PHONE_NUMBER       # detect specific info types
//	veil -f photo.png -o out.png --info-types FACE # redact an image
//	veil config init                               # create a config file
//	veil infotypes list                            # list common info types
//	veil doctor                                    # check endpoint health
//
// See https://github.com/dshills/veil for full documentation.
package main
