package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvforge/internal/extract"
	"cvforge/internal/llm"
	"cvforge/internal/shared/metrics"
	"cvforge/internal/shared/storage/object"
	"cvforge/internal/shared/telemetry"
	"cvforge/resume/render"
	"cvforge/resume/schema"
)

// Service coordinates upload, extraction, and document generation.
type Service struct {
	Repo      Repo
	Store     object.ObjectStore
	Extractor llm.Extractor
	Converter render.Converter

	registry *render.Registry
}

// NewService constructs a Service.
func NewService(repo Repo, store object.ObjectStore, extractor llm.Extractor, converter render.Converter) *Service {
	return &Service{
		Repo:      repo,
		Store:     store,
		Extractor: extractor,
		Converter: converter,
		registry:  render.NewRegistry(),
	}
}

// Upload ingests a resume file: extracts its text, asks the LLM for a
// structured YAML record, validates it, and persists both the source file
// and the YAML.
func (s *Service) Upload(ctx context.Context, fileName string, file io.Reader) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	mimeType := http.DetectContentType(data)
	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	yamlText, err := s.Extractor.ExtractRecord(ctx, text)
	if err != nil {
		return Resume{}, fmt.Errorf("extract record: %w", err)
	}

	if _, err := schema.ParseYAML([]byte(yamlText)); err != nil {
		return Resume{}, err
	}

	id := uuid.NewString()
	yamlKey := fmt.Sprintf("resumes/%s/resume.yaml", id)
	if _, err := s.Store.SaveWithKey(ctx, yamlKey, "application/yaml", strings.NewReader(yamlText)); err != nil {
		return Resume{}, fmt.Errorf("store yaml: %w", err)
	}

	sourceKey := fmt.Sprintf("resumes/%s/source_%s", id, filepath.Base(fileName))
	if _, err := s.Store.SaveWithKey(ctx, sourceKey, mimeType, bytes.NewReader(data)); err != nil {
		return Resume{}, fmt.Errorf("store source: %w", err)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:               id,
		OriginalFilename: filepath.Base(fileName),
		YAMLKey:          yamlKey,
		GenerationCount:  0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, fmt.Errorf("persist resume: %w", err)
	}

	metrics.IncUpload()
	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id": id,
		"file_name": resume.OriginalFilename,
		"mime_type": mimeType,
		"bytes":     len(data),
	})
	return resume, nil
}

// Generate renders the stored record into a DOCX, converts it to PDF when a
// converter is configured, and records a new version. A failed PDF
// conversion does not fail the generation.
func (s *Service) Generate(ctx context.Context, resumeID string) (Version, error) {
	metrics.IncGenerationStarted()
	start := time.Now()

	version, err := s.generate(ctx, resumeID)
	if err != nil {
		metrics.IncGenerationFailed()
		return Version{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return version, nil
}

func (s *Service) generate(ctx context.Context, resumeID string) (Version, error) {
	resume, err := s.Repo.Get(ctx, resumeID)
	if err != nil {
		return Version{}, err
	}

	rc, err := s.Store.Open(ctx, resume.YAMLKey)
	if err != nil {
		return Version{}, &render.IOError{Path: resume.YAMLKey, Err: err}
	}
	yamlData, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return Version{}, &render.IOError{Path: resume.YAMLKey, Err: err}
	}

	record, err := schema.ParseYAML(yamlData)
	if err != nil {
		return Version{}, err
	}

	doc := render.Assemble(record, s.registry)

	number, err := s.Repo.IncrementGeneration(ctx, resumeID)
	if err != nil {
		return Version{}, err
	}

	workDir, err := os.MkdirTemp("", "cvforge-generate-")
	if err != nil {
		return Version{}, &render.IOError{Path: "tempdir", Err: err}
	}
	defer os.RemoveAll(workDir)

	docxPath := filepath.Join(workDir, fmt.Sprintf("resume_v%d.docx", number))
	if err := render.WriteFile(doc, s.registry, docxPath); err != nil {
		return Version{}, err
	}

	docxKey := fmt.Sprintf("generated/%s/resume_v%d.docx", resumeID, number)
	if err := s.storeFile(ctx, docxKey, docxPath, docxMimeType); err != nil {
		return Version{}, err
	}

	pdfKey := ""
	if s.Converter != nil {
		pdfPath, convErr := s.Converter.Convert(ctx, docxPath)
		if convErr != nil {
			metrics.IncPDFConversionFailed()
			telemetry.Warn("resume.pdf_conversion_failed", map[string]any{
				"resume_id": resumeID,
				"version":   number,
				"error":     convErr.Error(),
			})
		} else {
			pdfKey = fmt.Sprintf("generated/%s/resume_v%d.pdf", resumeID, number)
			if err := s.storeFile(ctx, pdfKey, pdfPath, "application/pdf"); err != nil {
				return Version{}, err
			}
		}
	}

	version := Version{
		ID:            uuid.NewString(),
		ResumeID:      resumeID,
		VersionNumber: number,
		DocxKey:       docxKey,
		PDFKey:        pdfKey,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.CreateVersion(ctx, version); err != nil {
		return Version{}, fmt.Errorf("persist version: %w", err)
	}

	telemetry.Info("resume.generated", map[string]any{
		"resume_id": resumeID,
		"version":   number,
		"docx_key":  docxKey,
		"pdf":       pdfKey != "",
	})
	return version, nil
}

// Get returns a resume with its versions.
func (s *Service) Get(ctx context.Context, resumeID string) (Resume, []Version, error) {
	resume, err := s.Repo.Get(ctx, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	versions, err := s.Repo.ListVersions(ctx, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	return resume, versions, nil
}

// List returns all resumes.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func (s *Service) storeFile(ctx context.Context, key, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return &render.IOError{Path: path, Err: err}
	}
	defer f.Close()
	if _, err := s.Store.SaveWithKey(ctx, key, contentType, f); err != nil {
		return &render.IOError{Path: key, Err: err}
	}
	return nil
}
