// Package filex contains small filesystem and file-naming helpers shared by
// the CLI and the upload pipeline.
package filex

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// ContentTypeFor guesses a MIME type from the file name extension, falling
// back to application/octet-stream. Any charset parameter is stripped, since
// the file service stores the bare media type.
func ContentTypeFor(name string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		return "application/octet-stream"
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// HumanSize formats a byte count using binary units, e.g. "2.5 MiB".
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
