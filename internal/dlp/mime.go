package dlp

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// SniffType resolves the MIME type for a file payload: extension lookup
// first, then content sniffing, which itself falls back to
// application/octet-stream. Media type parameters (charset etc.) are
// stripped since the service only cares about the bare type.
func SniffType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return bareType(t)
	}
	return bareType(http.DetectContentType(data))
}

func bareType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
