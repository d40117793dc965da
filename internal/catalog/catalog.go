// Package catalog defines the static table of recognized source file
// extensions, their conventional entry-point filenames, and display names.
package catalog

import "sort"

// Entry describes one recognized extension.
type Entry struct {
	// Extension including the leading dot, e.g. ".py"
	Extension string
	// EntryPoints are conventional entry-point base names in priority order
	EntryPoints []string
	// DisplayName is the human-readable language name, e.g. "Python"
	DisplayName string
}

// UnknownLanguage is returned for extensions outside the catalog.
const UnknownLanguage = "Unknown"

var entries = map[string]Entry{
	".py": {
		Extension:   ".py",
		EntryPoints: []string{"main.py", "app.py", "index.py", "setup.py"},
		DisplayName: "Python",
	},
	".js": {
		Extension:   ".js",
		EntryPoints: []string{"index.js", "main.js", "app.js", "server.js"},
		DisplayName: "JavaScript",
	},
	".ts": {
		Extension:   ".ts",
		EntryPoints: []string{"index.ts", "main.ts", "app.ts", "server.ts"},
		DisplayName: "TypeScript",
	},
	".go": {
		Extension:   ".go",
		EntryPoints: []string{"main.go", "app.go", "server.go"},
		DisplayName: "Go",
	},
	".rs": {
		Extension:   ".rs",
		EntryPoints: []string{"main.rs", "lib.rs"},
		DisplayName: "Rust",
	},
	".java": {
		Extension:   ".java",
		EntryPoints: []string{"Main.java", "App.java", "Application.java"},
		DisplayName: "Java",
	},
	".rb": {
		Extension:   ".rb",
		EntryPoints: []string{"main.rb", "app.rb", "application.rb"},
		DisplayName: "Ruby",
	},
	".php": {
		Extension:   ".php",
		EntryPoints: []string{"index.php", "app.php"},
		DisplayName: "PHP",
	},
	".cs": {
		Extension:   ".cs",
		EntryPoints: []string{"Program.cs", "Startup.cs"},
		DisplayName: "C#",
	},
}

// extensions is the sorted list of known extensions, computed once so that
// callers iterate the catalog in a deterministic order.
var extensions = func() []string {
	exts := make([]string, 0, len(entries))
	for ext := range entries {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}()

// Extensions returns all recognized extensions in sorted order.
func Extensions() []string {
	out := make([]string, len(extensions))
	copy(out, extensions)
	return out
}

// Lookup returns the catalog entry for ext and whether ext is recognized.
func Lookup(ext string) (Entry, bool) {
	e, ok := entries[ext]
	return e, ok
}

// DisplayName maps an extension to its language name, or UnknownLanguage
// for extensions outside the catalog.
func DisplayName(ext string) string {
	if e, ok := entries[ext]; ok {
		return e.DisplayName
	}
	return UnknownLanguage
}

// EntryPoints returns the conventional entry-point base names for ext,
// or nil for extensions outside the catalog.
func EntryPoints(ext string) []string {
	if e, ok := entries[ext]; ok {
		return e.EntryPoints
	}
	return nil
}
