package scan

import "sort"

// primaryShare is the fraction of the most frequent extension's file count an
// extension needs to be treated as a primary language. Repositories are often
// polyglot (a backend plus a frontend); a hard single-language rule would
// discard half the documentation signal.
const primaryShare = 0.3

// PrimaryExtensions selects every extension whose file count is at least
// primaryShare of the maximum count. The result is sorted for deterministic
// downstream iteration; ties are all included.
func PrimaryExtensions(counts map[string]int) []string {
	if len(counts) == 0 {
		return nil
	}

	maxCount := 0
	for _, n := range counts {
		if n > maxCount {
			maxCount = n
		}
	}

	threshold := primaryShare * float64(maxCount)
	var primary []string
	for ext, n := range counts {
		if float64(n) >= threshold {
			primary = append(primary, ext)
		}
	}
	sort.Strings(primary)
	return primary
}
