package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	resume := Resume{
		ID:               "resume-1",
		OriginalFilename: "cv.pdf",
		YAMLKey:          "resumes/resume-1/resume.yaml",
		GenerationCount:  0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.OriginalFilename,
			resume.YAMLKey,
			resume.GenerationCount,
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMapsNoRowsToNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, original_filename, yaml_key").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "original_filename", "yaml_key", "generation_count", "created_at", "updated_at"}))

	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoIncrementGenerationReturnsNewCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("UPDATE resumes").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows([]string{"generation_count"}).AddRow(3))

	count, err := repo.IncrementGeneration(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("IncrementGeneration: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateVersionStoresNullPDFKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	version := Version{
		ID:            "version-1",
		ResumeID:      "resume-1",
		VersionNumber: 1,
		DocxKey:       "generated/resume-1/resume_v1.docx",
		PDFKey:        "",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_versions").
		WithArgs(
			version.ID,
			version.ResumeID,
			version.VersionNumber,
			version.DocxKey,
			nil,
			version.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateVersion(context.Background(), version); err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListVersionsScansPDFKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "resume_id", "version_number", "docx_key", "pdf_key", "created_at"}).
		AddRow("v2", "resume-1", 2, "generated/resume-1/resume_v2.docx", "generated/resume-1/resume_v2.pdf", now).
		AddRow("v1", "resume-1", 1, "generated/resume-1/resume_v1.docx", nil, now)

	mock.ExpectQuery("SELECT id, resume_id, version_number").
		WithArgs("resume-1").
		WillReturnRows(rows)

	versions, err := repo.ListVersions(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(versions))
	}
	if versions[0].PDFKey == "" {
		t.Fatalf("expected pdf key on first version")
	}
	if versions[1].PDFKey != "" {
		t.Fatalf("expected empty pdf key on second version, got %q", versions[1].PDFKey)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
