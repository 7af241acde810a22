package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipe.json", FormatJSON},
		{"recipe.yaml", FormatYAML},
		{"recipe.yml", FormatYAML},
		{"RECIPE.YAML", FormatYAML},
		{"recipe.txt", FormatJSON},
		{"recipe", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReaderDeserialize(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"pancakes","count":2}`))
		if err != nil {
			t.Fatalf("NewReader() error = %v", err)
		}

		var doc testDoc
		if err := r.Deserialize(&doc); err != nil {
			t.Fatalf("Deserialize() error = %v", err)
		}
		if doc.Name != "pancakes" || doc.Count != 2 {
			t.Errorf("Deserialize() = %+v", doc)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := NewReader(FormatYAML, strings.NewReader("name: soup\ncount: 1\n"))
		if err != nil {
			t.Fatalf("NewReader() error = %v", err)
		}

		var doc testDoc
		if err := r.Deserialize(&doc); err != nil {
			t.Fatalf("Deserialize() error = %v", err)
		}
		if doc.Name != "soup" || doc.Count != 1 {
			t.Errorf("Deserialize() = %+v", doc)
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
			t.Error("NewReader should reject unknown formats")
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader("{not json"))
		if err != nil {
			t.Fatalf("NewReader() error = %v", err)
		}
		var doc testDoc
		if err := r.Deserialize(&doc); err == nil {
			t.Error("Deserialize should fail on malformed input")
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		var r *Reader
		var doc testDoc
		if err := r.Deserialize(&doc); err == nil {
			t.Error("Deserialize on nil reader should fail")
		}
	})
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte("name: stew\ncount: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto() error = %v", err)
	}
	defer r.Close()

	var doc testDoc
	if err := r.Deserialize(&doc); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if doc.Name != "stew" || doc.Count != 4 {
		t.Errorf("Deserialize() = %+v", doc)
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNewFileReaderMissingFile(t *testing.T) {
	if _, err := NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("NewFileReader should fail for a missing file")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"name":"chili","count":3}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile[testDoc](path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if doc.Name != "chili" || doc.Count != 3 {
		t.Errorf("FromFile() = %+v", doc)
	}

	if _, err := FromFile[testDoc](filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("FromFile should fail for a missing file")
	}
}
