// Package service implements the client for the remote content redaction
// service.
//
// The [Redactor] interface is the narrow boundary the CLI talks through;
// tests substitute local httptest servers by constructing a [Client] against
// their URL. The client makes one POST to the content:redact method per call:
// no retries, no batching, no streaming.
//
// HTTP 401/403 responses become [AuthError]; any other non-200 response is
// decoded into [RemoteError] from the service's JSON error envelope. Every
// failure is terminal for the invocation.
package service
