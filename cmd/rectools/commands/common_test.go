package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(`[{"id":1}]`), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := ReadInput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `[{"id":1}]` {
		t.Errorf("unexpected content: %s", got)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatInputPath(t *testing.T) {
	if got := FormatInputPath(StdinFilePath); got != "<stdin>" {
		t.Errorf("expected '<stdin>', got '%s'", got)
	}
	if got := FormatInputPath("records.json"); got != "records.json" {
		t.Errorf("expected 'records.json', got '%s'", got)
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.csv")

	t.Run("distinct paths are valid", func(t *testing.T) {
		if err := ValidateOutputPath(output, []string{input}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("output matching input fails", func(t *testing.T) {
		if err := ValidateOutputPath(input, []string{input}); err == nil {
			t.Error("expected error when output matches input")
		}
	})

	t.Run("stdin input is ignored", func(t *testing.T) {
		if err := ValidateOutputPath(output, []string{StdinFilePath}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
