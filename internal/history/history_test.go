package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if _, ok := Load(path, "deploy"); ok {
		t.Error("Expected no entry for a missing file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	if err := Save(path, "deploy", 2, "staging"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := Save(path, "other", 0, "x"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e, ok := Load(path, "deploy")
	if !ok {
		t.Fatal("Expected entry for deploy")
	}
	if e.Index != 2 || e.Value != "staging" {
		t.Errorf("Load() = %+v", e)
	}
	if e.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	_ = Save(path, "id", 1, "a")
	_ = Save(path, "id", 3, "b")

	e, _ := Load(path, "id")
	if e.Index != 3 || e.Value != "b" {
		t.Errorf("Load() = %+v, want latest answer", e)
	}
}

func TestSaveReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, ok := Load(path, "id"); ok {
		t.Error("Expected corrupt file to yield no entry")
	}
	if err := Save(path, "id", 1, "a"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, ok := Load(path, "id"); !ok {
		t.Error("Expected entry after rewrite")
	}
}

func TestResolve(t *testing.T) {
	options := []string{"Env", "dev", "staging", "prod"}
	notCaption := func(i int) bool { return i != 0 }

	tests := []struct {
		name   string
		entry  Entry
		want   int
		wantOK bool
	}{
		{"value wins", Entry{Index: 1, Value: "prod"}, 3, true},
		{"index fallback", Entry{Index: 2, Value: "gone"}, 2, true},
		{"index out of range", Entry{Index: 9}, 0, false},
		{"index on caption", Entry{Index: 0}, 0, false},
		{"value on caption falls back", Entry{Index: 1, Value: "Env"}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.entry, options, notCaption)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
