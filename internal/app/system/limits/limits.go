// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxFormSize caps calculator and sidebar form submissions. The forms
	// carry a handful of short fields plus the CSRF token.
	MaxFormSize = 16 << 10 // 16 KB
)
