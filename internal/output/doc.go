// Package output writes redacted service responses to their final
// destination.
//
// Text results go to an io.Writer (stdout in practice), one line per
// returned content item. Image results go verbatim to a file path,
// replacing any existing file at that path. Write and close failures are
// reported, never swallowed.
package output
