// Package filex holds small filesystem helpers used when saving downloaded
// reports to disk.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// WriteFile streams r into dir/name through a temporary file so a failed
// download never leaves a truncated report behind. It returns the final path.
func WriteFile(dir, name string, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	final := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), final); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	return final, nil
}

// SafeName replaces path separators and whitespace so a server-provided or
// generated name can be used as a single file name.
func SafeName(name string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", " ", "_", "..", "_")
	name = r.Replace(strings.TrimSpace(name))
	if name == "" {
		return "report"
	}
	return name
}
