// internal/app/system/limits/limits.go
package limits

// Request body size limits. These keep oversized requests from
// exhausting memory before validation runs.
const (
	// MaxJSONBodySize caps JSON request bodies (login, profile and
	// church payloads).
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxAvatarFormSize caps multipart form memory for signup and
	// avatar uploads, which may carry an image file.
	MaxAvatarFormSize = 10 << 20 // 10 MB
)
