package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Converter turns an already-written DOCX file into a fixed-layout PDF at a
// derived path (same base name, .pdf extension). Implementations are opaque
// external collaborators; the engine only hands them a path and receives a
// path or an error back.
type Converter interface {
	Convert(ctx context.Context, docxPath string) (string, error)
}

const defaultConvertTimeout = 60 * time.Second

// LibreOfficeConverter converts via a headless soffice invocation. The call
// is bounded by Timeout; expiry surfaces as a *ConversionError.
type LibreOfficeConverter struct {
	// Binary is the soffice executable; defaults to "soffice" on PATH.
	Binary  string
	Timeout time.Duration
}

// Convert runs soffice --headless --convert-to pdf and returns the derived
// PDF path.
func (c *LibreOfficeConverter) Convert(ctx context.Context, docxPath string) (string, error) {
	binary := c.Binary
	if strings.TrimSpace(binary) == "" {
		binary = "soffice"
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultConvertTimeout
	}

	if _, err := os.Stat(docxPath); err != nil {
		return "", &ConversionError{Path: docxPath, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outDir := filepath.Dir(docxPath)
	cmd := exec.CommandContext(ctx, binary, "--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", &ConversionError{Path: docxPath, Err: fmt.Errorf("converter timed out after %s", timeout)}
		}
		return "", &ConversionError{Path: docxPath, Err: fmt.Errorf("%w: %s", err, firstLine(string(output)))}
	}

	pdfPath := DerivedPDFPath(docxPath)
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &ConversionError{Path: docxPath, Err: fmt.Errorf("converter produced no output file: %w", err)}
	}
	return pdfPath, nil
}

// DerivedPDFPath returns the fixed-layout artifact path for a DOCX path:
// same directory and base name, .pdf extension.
func DerivedPDFPath(docxPath string) string {
	ext := filepath.Ext(docxPath)
	return strings.TrimSuffix(docxPath, ext) + ".pdf"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}
