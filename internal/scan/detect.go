package scan

import (
	"sort"

	"readyou/internal/catalog"
)

// DetectProjectType picks the display name of the extension with the most
// files in the ranked set. Ties resolve to the lexicographically smallest
// extension so the result is deterministic. The project type only
// parameterizes the generation prompt's wording.
func DetectProjectType(set RankedSet) string {
	if len(set) == 0 {
		return catalog.UnknownLanguage
	}

	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	primary := exts[0]
	for _, ext := range exts[1:] {
		if len(set[ext]) > len(set[primary]) {
			primary = ext
		}
	}

	return catalog.DisplayName(primary)
}
