package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume row.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, original_filename, yaml_key, generation_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.OriginalFilename,
		resume.YAMLKey,
		resume.GenerationCount,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// Get returns a resume by id.
func (r *PGRepo) Get(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT id, original_filename, yaml_key, generation_count, created_at, updated_at
FROM resumes
WHERE id = $1`

	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resume.ID,
		&resume.OriginalFilename,
		&resume.YAMLKey,
		&resume.GenerationCount,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// List returns all resumes, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT id, original_filename, yaml_key, generation_count, created_at, updated_at
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.OriginalFilename,
			&resume.YAMLKey,
			&resume.GenerationCount,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// IncrementGeneration bumps the generation counter and returns the new value.
func (r *PGRepo) IncrementGeneration(ctx context.Context, id string) (int, error) {
	const query = `
UPDATE resumes
SET generation_count = generation_count + 1, updated_at = now()
WHERE id = $1
RETURNING generation_count`

	var count int
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

// CreateVersion inserts a generated version row.
func (r *PGRepo) CreateVersion(ctx context.Context, version Version) error {
	const query = `
INSERT INTO resume_versions (id, resume_id, version_number, docx_key, pdf_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	var pdfKey sql.NullString
	if version.PDFKey != "" {
		pdfKey = sql.NullString{String: version.PDFKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		version.ID,
		version.ResumeID,
		version.VersionNumber,
		version.DocxKey,
		pdfKey,
		version.CreatedAt,
	)
	return err
}

// ListVersions returns all versions for a resume, newest first.
func (r *PGRepo) ListVersions(ctx context.Context, resumeID string) ([]Version, error) {
	const query = `
SELECT id, resume_id, version_number, docx_key, pdf_key, created_at
FROM resume_versions
WHERE resume_id = $1
ORDER BY version_number DESC`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		var version Version
		var pdfKey sql.NullString
		if err := rows.Scan(
			&version.ID,
			&version.ResumeID,
			&version.VersionNumber,
			&version.DocxKey,
			&pdfKey,
			&version.CreatedAt,
		); err != nil {
			return nil, err
		}
		if pdfKey.Valid {
			version.PDFKey = pdfKey.String
		}
		out = append(out, version)
	}
	return out, rows.Err()
}
