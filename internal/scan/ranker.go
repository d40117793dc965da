package scan

import (
	"os"
	"path/filepath"
	"strings"

	"readyou/internal/catalog"
	"readyou/internal/logging"
)

// MaxFilesPerLanguage caps how many files represent one language in the
// generation prompt. The cap bounds outbound prompt size and keeps the
// heuristic deterministic and cheap.
const MaxFilesPerLanguage = 5

// sourceDirs are path segments that mark a file as living in a primary
// source directory.
var sourceDirs = map[string]bool{
	"src": true,
	"lib": true,
	"app": true,
}

// inSourceDir reports whether any segment of the slash-separated relative
// path is a conventional source directory.
func inSourceDir(relPath string) bool {
	for _, seg := range strings.Split(relPath, "/") {
		if sourceDirs[seg] {
			return true
		}
	}
	return false
}

// Ranker orders each primary language's files by importance and loads the
// contents of the retained ones.
type Ranker struct {
	logger *logging.Logger
}

// NewRanker creates a ranker.
func NewRanker(logger *logging.Logger) *Ranker {
	return &Ranker{logger: logger}
}

// Rank builds the ranked file set for the given primary extensions. Files
// are ordered in three tiers, each deduplicated against earlier tiers:
//
//  1. catalog entry points inside source directories, most recently matched
//     entry point first;
//  2. other files inside source directories, in discovery order;
//  3. everything else, in discovery order.
//
// The list is truncated to MaxFilesPerLanguage before contents are read.
// A file that cannot be read is logged and omitted; it never aborts the scan.
func (rk *Ranker) Rank(result *Result, primary []string) RankedSet {
	set := make(RankedSet, len(primary))

	for _, ext := range primary {
		ordered := rankExtension(result.ByExtension[ext], catalog.EntryPoints(ext))
		if len(ordered) > MaxFilesPerLanguage {
			ordered = ordered[:MaxFilesPerLanguage]
		}

		files := make([]RankedFile, 0, len(ordered))
		for _, relPath := range ordered {
			data, err := os.ReadFile(filepath.Join(result.Root, filepath.FromSlash(relPath)))
			if err != nil {
				rk.logger.Warn("Error reading file", map[string]interface{}{
					"file":  relPath,
					"error": err.Error(),
				})
				continue
			}
			files = append(files, RankedFile{
				Path:    relPath,
				Content: "# File: " + relPath + "\n" + string(data),
			})
		}
		set[ext] = files
	}

	return set
}

// rankExtension orders one extension's files into the three importance tiers.
func rankExtension(files []string, entryPoints []string) []string {
	seen := make(map[string]bool, len(files))
	var ordered []string

	// Tier 1: entry points in source directories. Prepending keeps the most
	// recently matched entry point at the front of the list.
	for _, name := range entryPoints {
		for _, f := range files {
			if seen[f] || !inSourceDir(f) {
				continue
			}
			if filepath.Base(f) == name {
				ordered = append([]string{f}, ordered...)
				seen[f] = true
			}
		}
	}

	// Tier 2: remaining files in source directories
	for _, f := range files {
		if !seen[f] && inSourceDir(f) {
			ordered = append(ordered, f)
			seen[f] = true
		}
	}

	// Tier 3: everything else, in discovery order
	for _, f := range files {
		if !seen[f] {
			ordered = append(ordered, f)
			seen[f] = true
		}
	}

	return ordered
}
