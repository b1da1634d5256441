package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	layout, err := Init(root)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, sub := range SubDirs {
		dir := filepath.Join(root, filepath.FromSlash(sub))
		info, sErr := os.Stat(dir)
		if sErr != nil {
			t.Errorf("expected directory %s to exist: %v", dir, sErr)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s exists but is not a directory", dir)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "qc_report", "summary")); err != nil {
		t.Errorf("qc_report/summary missing: %v", err)
	}
	if layout.AlignResults != filepath.Join(root, "align_results") {
		t.Errorf("unexpected align_results path: %s", layout.AlignResults)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	if _, err := Init(root); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}

	// Leave a file in an existing directory to prove nothing gets truncated.
	marker := filepath.Join(root, "bam", "keep.txt")
	if err := os.WriteFile(marker, []byte("keep"), 0644); err != nil {
		t.Fatalf("writing marker file: %v", err)
	}

	if _, err := Init(root); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("marker file lost after re-init: %v", err)
	}
	if string(data) != "keep" {
		t.Errorf("marker file content changed: %q", data)
	}
}

func TestInitFailsWhenParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0644); err != nil {
		t.Fatalf("writing blocker file: %v", err)
	}

	if _, err := Init(filepath.Join(blocker, "ws")); err == nil {
		t.Error("expected Init to fail when the parent path is a file")
	}
}

func TestInitRejectsEmptyRoot(t *testing.T) {
	if _, err := Init(""); err == nil {
		t.Error("expected Init to reject an empty root")
	}
}

func TestSampleDir(t *testing.T) {
	l := Open("/data/ws")
	want := filepath.Join("/data/ws", "align_results", "SRR29917562")
	if got := l.SampleDir("SRR29917562"); got != want {
		t.Errorf("SampleDir = %s, want %s", got, want)
	}
}
