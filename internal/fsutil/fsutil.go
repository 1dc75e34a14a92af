// Package fsutil holds small filesystem helpers shared by the CLI and the
// artifact writers: directory creation, collision-free filenames, and
// human-readable byte sizes.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates the directory (and parents) if it does not exist and
// returns its cleaned path.
func EnsureDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty directory path")
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", clean, err)
	}
	return clean, nil
}

// UniqueFilename returns a filename under dir built from base and ext that does
// not collide with an existing file. On collision a numeric suffix is appended:
// base.ext, base_1.ext, base_2.ext, ...
func UniqueFilename(dir, base, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := base + ext
	for n := 1; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
}

// FormatBytes renders a byte count using binary units, e.g. "1.50 MB".
func FormatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
