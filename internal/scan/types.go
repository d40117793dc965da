// Package scan implements repository scanning: collecting recognized source
// files, selecting primary languages, and ranking the most representative
// files of each language for documentation generation.
package scan

// Result holds the outcome of one directory scan. Paths are relative to
// Root, slash-separated, in discovery order.
type Result struct {
	Root string

	// ByExtension groups matched file paths by their catalog extension
	ByExtension map[string][]string

	// AllFiles is the flat list of every matched file across extensions
	AllFiles []string
}

// Counts returns the number of matched files per extension.
func (r *Result) Counts() map[string]int {
	counts := make(map[string]int, len(r.ByExtension))
	for ext, files := range r.ByExtension {
		counts[ext] = len(files)
	}
	return counts
}

// RankedFile is one file retained for the generation prompt. Content starts
// with a "# File: <path>" header line followed by the file's full text.
type RankedFile struct {
	Path    string
	Content string
}

// RankedSet maps each primary extension to its ranked files, at most
// MaxFilesPerLanguage per extension.
type RankedSet map[string][]RankedFile
