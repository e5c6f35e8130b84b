// Package storage persists uploaded images (student photos, signature
// scans) on local disk and hands back the relative paths stored on records.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads writes files under a base directory.
type Uploads struct {
	baseDir string
}

// NewUploads ensures the base directory exists and returns a handle.
func NewUploads(baseDir string) (*Uploads, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("uploads directory not configured")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &Uploads{baseDir: baseDir}, nil
}

// SaveMultipart stores an uploaded file under a sanitized, collision-free
// name prefixed with the owner tag. It returns the stored file name.
func (u *Uploads) SaveMultipart(owner string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close() //nolint:errcheck

	name := fmt.Sprintf("%s_%s%s", sanitize(owner), uuid.NewString(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(u.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file if present.
func (u *Uploads) Delete(name string) error {
	if name == "" {
		return nil
	}
	path := filepath.Join(u.baseDir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// Dir exposes the base directory for static file serving.
func (u *Uploads) Dir() string {
	return u.baseDir
}

func sanitize(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "..", "")
	out := replacer.Replace(s)
	if out == "" {
		out = "file"
	}
	return out
}
