package scan

import (
	"os"
	"path/filepath"
	"strings"

	"readyou/internal/catalog"
	"readyou/internal/errors"
	"readyou/internal/logging"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoredDirs are directory names that never contain documentation-relevant
// source: VCS metadata, dependency trees, virtualenvs, and build output.
var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"build":        true,
	"dist":         true,
}

// isIgnoredDir reports whether a directory name is excluded from scanning.
// Matching is by exact segment name, not substring, so a directory called
// "my-build-tool" is still scanned.
func isIgnoredDir(name string) bool {
	return ignoredDirs[name] || strings.HasSuffix(name, ".egg-info")
}

// Collector walks a repository tree and groups recognized source files by
// extension.
type Collector struct {
	logger *logging.Logger

	// ignoreGlobs are extra user-configured exclusion patterns, matched
	// with doublestar against the slash-separated relative path
	ignoreGlobs []string
}

// NewCollector creates a collector. ignoreGlobs may be nil.
func NewCollector(logger *logging.Logger, ignoreGlobs []string) *Collector {
	return &Collector{
		logger:      logger,
		ignoreGlobs: ignoreGlobs,
	}
}

// Collect recursively enumerates files under root whose extension is in the
// catalog, excluding ignored directories. It fails with NO_SOURCE_FILES when
// nothing matches.
func (c *Collector) Collect(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.InternalError, "cannot access repository path", err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.InternalError, "repository path is not a directory: "+root)
	}

	result := &Result{
		Root:        root,
		ByExtension: make(map[string][]string),
	}

	walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal
			c.logger.Warn("Skipping unreadable path", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if isIgnoredDir(d.Name()) || c.matchesIgnoreGlob(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if _, ok := catalog.Lookup(ext); !ok {
			return nil
		}
		if c.matchesIgnoreGlob(relPath) {
			return nil
		}

		result.ByExtension[ext] = append(result.ByExtension[ext], relPath)
		result.AllFiles = append(result.AllFiles, relPath)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(errors.InternalError, "directory walk failed", walkErr)
	}

	if len(result.AllFiles) == 0 {
		return nil, errors.New(errors.NoSourceFiles,
			"no recognized source code files found in the repository")
	}

	c.logger.Debug("Scan completed", map[string]interface{}{
		"root":      root,
		"files":     len(result.AllFiles),
		"languages": len(result.ByExtension),
	})

	return result, nil
}

func (c *Collector) matchesIgnoreGlob(relPath string) bool {
	for _, pattern := range c.ignoreGlobs {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
