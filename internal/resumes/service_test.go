package resumes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"cvforge/internal/llm"
	"cvforge/internal/shared/storage/object/local"
	"cvforge/resume/render"
	"cvforge/resume/schema"
)

const sampleYAML = `personal_info:
  name: Ada Lovelace
  email: ada@example.com
experience:
  - company: Analytical Engines
    location: London
    dates: 1840 - 1843
    title: Principal Engineer
    bullet_points:
      - Wrote the first published algorithm
skills:
  categories:
    - name: Languages
      items:
        - Ada
        - Go
`

type fakeExtractor struct {
	yaml string
	err  error
}

func (f fakeExtractor) ExtractRecord(ctx context.Context, resumeText string) (string, error) {
	return f.yaml, f.err
}

type fakeConverter struct {
	fail bool
}

func (f fakeConverter) Convert(ctx context.Context, docxPath string) (string, error) {
	if f.fail {
		return "", &render.ConversionError{Path: docxPath, Err: errors.New("soffice exploded")}
	}
	pdfPath := render.DerivedPDFPath(docxPath)
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644); err != nil {
		return "", err
	}
	return pdfPath, nil
}

func uploadPayload(t *testing.T) []byte {
	t.Helper()
	reg := render.NewRegistry()
	doc := render.NewDocument()
	doc.Append(render.Paragraph{
		Style: render.StyleBody,
		Runs:  []render.Run{{Text: "Ada Lovelace. Principal Engineer at Analytical Engines."}},
	})
	data, err := render.Serialize(doc, reg)
	if err != nil {
		t.Fatalf("serialize upload payload: %v", err)
	}
	return data
}

func newTestService(t *testing.T, extractor llm.Extractor, converter render.Converter) *Service {
	t.Helper()
	store := local.New(t.TempDir())
	return NewService(NewMemoryRepo(), store, extractor, converter)
}

func TestUploadStoresYAMLAndCreatesResume(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, nil)

	resume, err := svc.Upload(context.Background(), "cv.docx", bytes.NewReader(uploadPayload(t)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resume.ID == "" {
		t.Fatalf("expected resume id")
	}
	if resume.OriginalFilename != "cv.docx" {
		t.Fatalf("unexpected filename: %q", resume.OriginalFilename)
	}

	rc, err := svc.Store.Open(context.Background(), resume.YAMLKey)
	if err != nil {
		t.Fatalf("open stored yaml: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if !strings.Contains(string(data), "Ada Lovelace") {
		t.Fatalf("stored yaml missing content: %q", data)
	}
}

func TestUploadRejectsInvalidRecord(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: "skills: \"not a mapping\"\n"}, nil)

	_, err := svc.Upload(context.Background(), "cv.docx", bytes.NewReader(uploadPayload(t)))
	var schemaErr *schema.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, nil)

	_, err := svc.Upload(context.Background(), "cv.docx", strings.NewReader(""))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGenerateCreatesVersionWithPDF(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, fakeConverter{})

	resume, err := svc.Upload(context.Background(), "cv.docx", bytes.NewReader(uploadPayload(t)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	version, err := svc.Generate(context.Background(), resume.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if version.VersionNumber != 1 {
		t.Fatalf("expected version 1, got %d", version.VersionNumber)
	}
	if version.DocxKey == "" || version.PDFKey == "" {
		t.Fatalf("expected both artifact keys, got %+v", version)
	}

	rc, err := svc.Store.Open(context.Background(), version.DocxKey)
	if err != nil {
		t.Fatalf("open stored docx: %v", err)
	}
	rc.Close()

	second, err := svc.Generate(context.Background(), resume.ID)
	if err != nil {
		t.Fatalf("Generate second: %v", err)
	}
	if second.VersionNumber != 2 {
		t.Fatalf("expected version 2, got %d", second.VersionNumber)
	}
}

func TestGenerateSurvivesConversionFailure(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, fakeConverter{fail: true})

	resume, err := svc.Upload(context.Background(), "cv.docx", bytes.NewReader(uploadPayload(t)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	version, err := svc.Generate(context.Background(), resume.ID)
	if err != nil {
		t.Fatalf("Generate should tolerate conversion failure: %v", err)
	}
	if version.DocxKey == "" {
		t.Fatalf("expected docx key")
	}
	if version.PDFKey != "" {
		t.Fatalf("expected empty pdf key after failed conversion, got %q", version.PDFKey)
	}
}

func TestGenerateUnknownResume(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, nil)

	if _, err := svc.Generate(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetReturnsVersions(t *testing.T) {
	svc := newTestService(t, fakeExtractor{yaml: sampleYAML}, nil)

	resume, err := svc.Upload(context.Background(), "cv.docx", bytes.NewReader(uploadPayload(t)))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if _, err := svc.Generate(context.Background(), resume.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, versions, err := svc.Get(context.Background(), resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != resume.ID {
		t.Fatalf("unexpected resume: %+v", got)
	}
	if len(versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(versions))
	}
}
