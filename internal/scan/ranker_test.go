package scan

import (
	"fmt"
	"strings"
	"testing"
)

func TestRankExtension_Tiers(t *testing.T) {
	files := []string{
		"scripts/helper.py",
		"src/core.py",
		"tools/main.py",
		"src/main.py",
		"lib/app.py",
	}

	got := rankExtension(files, []string{"main.py", "app.py", "index.py", "setup.py"})

	// Tier 1 holds entry points in source dirs, most recently matched first:
	// app.py is matched after main.py, so it lands at the front.
	want := []string{
		"lib/app.py",
		"src/main.py",
		"src/core.py",
		"scripts/helper.py",
		"tools/main.py",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q (full order: %v)", i, got[i], want[i], got)
		}
	}
}

func TestRankExtension_EntryPointInSrcBeforeOthers(t *testing.T) {
	files := []string{
		"examples/demo.py",
		"src/main.py",
	}
	got := rankExtension(files, []string{"main.py"})
	if got[0] != "src/main.py" {
		t.Errorf("first ranked file = %q, want src/main.py", got[0])
	}
}

func TestRanker_CapsAtFivePerExtension(t *testing.T) {
	root := t.TempDir()
	result := &Result{Root: root, ByExtension: map[string][]string{}}
	for i := 0; i < 12; i++ {
		rel := fmt.Sprintf("pkg%d/file%d.go", i, i)
		writeFile(t, root, rel, "package p")
		result.ByExtension[".go"] = append(result.ByExtension[".go"], rel)
		result.AllFiles = append(result.AllFiles, rel)
	}

	set := NewRanker(testLogger()).Rank(result, []string{".go"})
	if got := len(set[".go"]); got != MaxFilesPerLanguage {
		t.Errorf("ranked %d files, want %d", got, MaxFilesPerLanguage)
	}
}

func TestRanker_ContentHasPathHeader(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.py", "print('hello')\n")
	result := &Result{
		Root:        root,
		ByExtension: map[string][]string{".py": {"src/main.py"}},
		AllFiles:    []string{"src/main.py"},
	}

	set := NewRanker(testLogger()).Rank(result, []string{".py"})
	files := set[".py"]
	if len(files) != 1 {
		t.Fatalf("got %d ranked files, want 1", len(files))
	}
	if !strings.HasPrefix(files[0].Content, "# File: src/main.py\n") {
		t.Errorf("content missing path header: %q", files[0].Content)
	}
	if !strings.Contains(files[0].Content, "print('hello')") {
		t.Errorf("content missing file text: %q", files[0].Content)
	}
}

func TestRanker_UnreadableFileIsOmittedNotFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/good.py", "ok")
	// missing.py is listed in the scan result but absent on disk
	result := &Result{
		Root:        root,
		ByExtension: map[string][]string{".py": {"src/good.py", "src/missing.py"}},
		AllFiles:    []string{"src/good.py", "src/missing.py"},
	}

	set := NewRanker(testLogger()).Rank(result, []string{".py"})
	files := set[".py"]
	if len(files) != 1 {
		t.Fatalf("got %d ranked files, want 1 (unreadable file omitted)", len(files))
	}
	if files[0].Path != "src/good.py" {
		t.Errorf("ranked file = %q, want src/good.py", files[0].Path)
	}
}

func TestInSourceDir(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"src/main.py", true},
		{"lib/util.py", true},
		{"app/models/user.rb", true},
		{"deep/src/nested.py", true},
		{"srcs/main.py", false},
		{"library/util.py", false},
		{"main.py", false},
	}
	for _, tt := range tests {
		if got := inSourceDir(tt.path); got != tt.want {
			t.Errorf("inSourceDir(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
