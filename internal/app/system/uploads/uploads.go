// internal/app/system/uploads/uploads.go

// Package uploads stores user-submitted files (avatars, church logos and
// gallery images) on local disk and maps each stored object to a public
// URL under the configured prefix.
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Info contains metadata about a stored file.
type Info struct {
	Key         string // storage key, e.g. "avatars/2026/01/1a2b3c4d-photo.jpg"
	URL         string // public URL, e.g. "/files/avatars/2026/01/1a2b3c4d-photo.jpg"
	FileName    string // original client filename
	Size        int64
	ContentType string
}

// Store persists uploaded files and resolves their public URLs.
type Store interface {
	// Put stores the file under a fresh unique key inside kind (a short
	// category directory like "avatars" or "logos") and returns its Info.
	Put(ctx context.Context, kind, filename string, r io.Reader, size int64, contentType string) (Info, error)

	// Remove deletes a previously stored object. Missing objects are not
	// an error.
	Remove(ctx context.Context, key string) error
}

// Local stores files under a base directory on disk.
type Local struct {
	basePath  string
	urlPrefix string
}

// NewLocal builds a disk-backed Store. basePath is created if missing.
func NewLocal(basePath, urlPrefix string) (*Local, error) {
	if basePath == "" {
		return nil, fmt.Errorf("upload base path is empty")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", basePath, err)
	}
	return &Local{
		basePath:  basePath,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// BasePath returns the directory files are stored under, for mounting a
// file server over it.
func (l *Local) BasePath() string { return l.basePath }

// Put implements Store. Keys are generated as kind/YYYY/MM/uuid-filename
// so a hostile filename can never escape the base directory.
func (l *Local) Put(ctx context.Context, kind, filename string, r io.Reader, size int64, contentType string) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	now := time.Now().UTC()
	dateDir := fmt.Sprintf("%s/%04d/%02d", kind, now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	key := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	dst := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return Info{}, fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return Info{}, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return Info{}, fmt.Errorf("write upload file: %w", err)
	}

	return Info{
		Key:         key,
		URL:         l.urlPrefix + "/" + key,
		FileName:    filename,
		Size:        written,
		ContentType: contentType,
	}, nil
}

// Remove implements Store.
func (l *Local) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	// Get just the filename, not any path components
	filename = filepath.Base(filename)

	// Replace problematic characters
	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	// Ensure we have a reasonable filename
	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
