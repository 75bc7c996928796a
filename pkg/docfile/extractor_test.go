package docfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextMissingFile(t *testing.T) {
	result := ExtractText(filepath.Join(t.TempDir(), "missing.docx"))

	if !result.Degraded {
		t.Error("expected Degraded for a missing file")
	}
	if result.Reason == "" {
		t.Error("expected a Reason for the degraded result")
	}
	if result.Text != "" {
		t.Errorf("Text = %q, want empty", result.Text)
	}
}

func TestExtractTextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.docx")

	buf, err := ExportWord("# Positioning\nWe sell trust.", "Acme")
	if err != nil {
		t.Fatalf("ExportWord failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write temp docx: %v", err)
	}

	result := ExtractText(path)
	if result.Degraded {
		t.Fatalf("unexpected degraded extraction: %s", result.Reason)
	}
	if result.Text == "" {
		t.Fatal("extracted text is empty")
	}
}
