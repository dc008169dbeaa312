package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDerivedPDFPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"out/resume.docx", "out/resume.pdf"},
		{"resume.docx", "resume.pdf"},
		{"/tmp/a/b.v2.docx", "/tmp/a/b.v2.pdf"},
	}
	for _, tc := range cases {
		if got := DerivedPDFPath(tc.in); got != tc.want {
			t.Errorf("DerivedPDFPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConvertMissingInputIsConversionError(t *testing.T) {
	conv := &LibreOfficeConverter{Timeout: time.Second}

	_, err := conv.Convert(context.Background(), filepath.Join(t.TempDir(), "missing.docx"))
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConversionError, got %T: %v", err, err)
	}
}

func TestConvertMissingBinaryIsConversionError(t *testing.T) {
	dir := t.TempDir()
	docxPath := filepath.Join(dir, "resume.docx")
	if err := os.WriteFile(docxPath, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	conv := &LibreOfficeConverter{Binary: filepath.Join(dir, "no-such-soffice"), Timeout: time.Second}
	_, err := conv.Convert(context.Background(), docxPath)
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConversionError, got %T: %v", err, err)
	}
	if convErr.Path != docxPath {
		t.Fatalf("error path = %q, want %q", convErr.Path, docxPath)
	}
}
