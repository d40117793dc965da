package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"readyou/internal/errors"
)

// ReadmeFileName is the output file written at the scanned repository root.
const ReadmeFileName = "README.md"

// Save writes content to README.md under repoRoot, overwriting any existing
// file, and returns the written path.
func Save(repoRoot, content string) (string, error) {
	path := filepath.Join(repoRoot, ReadmeFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrap(errors.WriteFailed, "failed to write "+ReadmeFileName, err)
	}
	return path, nil
}

// Print writes content to w framed by banners, for dry-run mode.
func Print(w io.Writer, content string) {
	fmt.Fprintln(w, "\n=== Generated README Content ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, content)
	fmt.Fprintln(w, "\n============================")
}
