// Package dlp defines the wire-level request and response structures for the
// remote content redaction service, plus pure builders that assemble redaction
// requests from caller options.
//
// The JSON encoding follows the service's proto-JSON conventions: byte
// payloads are base64 strings, enums are encoded by name, and unset optional
// messages are omitted entirely. Building a request performs no I/O and has no
// side effects; the remote exchange itself lives in the service package.
package dlp
