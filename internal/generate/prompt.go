package generate

import (
	"fmt"
	"sort"
	"strings"

	"readyou/internal/scan"
)

// Fixed sampling parameters and footer. These are part of the tool's external
// interface: downstream consumers rely on the footer marker and the output
// size implied by the token ceilings.
const (
	temperature       = 0.7
	briefMaxTokens    = 1000
	detailedMaxTokens = 2000

	footer = "\n\n---\n*This README was automatically generated using [read-you](https://github.com/yourusername/read-you)*"
)

// systemPrompt frames the model as a documentation expert for the detected
// project type.
func systemPrompt(projectType string) string {
	return fmt.Sprintf("You are a technical documentation expert specializing in %s. "+
		"Generate a README.md based ONLY on the actual code provided, not assumptions. "+
		"Focus on the main implementation files and ignore configuration or build files.",
		projectType)
}

// userPrompt assembles the instruction template plus the serialized file
// contents. Extensions are serialized in sorted order so identical scans
// produce identical prompts.
func userPrompt(projectType string, set scan.RankedSet, detailed bool) string {
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	var b strings.Builder
	if detailed {
		fmt.Fprintf(&b, `You are analyzing a %s project's source code to generate a README.md file.
Focus on the most important implementation files, which have been automatically identified and prioritized.

Key points to analyze:
1. Look for main entry points and core functionality
2. Identify the project's primary features and purpose
3. Note any command-line arguments, API endpoints, or configuration options
4. Identify required dependencies from imports/package files

Files found: [%s]

Please include:
1. Project Title (based on the main functionality)
2. Clear description of what the code actually does
3. Installation Instructions (specific to %s)
4. Usage Examples (based on actual implementation)
5. Project Structure (focusing on key files)
6. Dependencies (based on actual imports/requirements)
7. Contributing Guidelines
8. License Information (if found)

Do not add any footer - it will be added automatically.
`, projectType, strings.Join(exts, ", "), projectType)
	} else {
		fmt.Fprintf(&b, `You are analyzing a %s project's source code to generate a concise README.md.
Focus on the most important implementation files that have been automatically identified.

Files found: [%s]

Create a brief README focusing on:
1. What the code actually does (based on the implementation)
2. How to use it (based on actual code patterns found)
3. Basic requirements (specific to %s)

Be direct and accurate. Only describe functionality that exists in the code.
Do not add any footer - it will be added automatically.
`, projectType, strings.Join(exts, ", "), projectType)
	}

	b.WriteString("\nHere's the actual code to analyze:\n")
	for _, ext := range exts {
		files := set[ext]
		if len(files) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s files:\n", ext)
		for _, f := range files {
			b.WriteString(f.Content)
			b.WriteString("\n")
		}
	}

	return b.String()
}
