package resumes

import "context"

// Repo defines persistence for resumes and their generated versions.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	Get(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
	// IncrementGeneration bumps the resume's generation counter and
	// returns the new value.
	IncrementGeneration(ctx context.Context, id string) (int, error)
	CreateVersion(ctx context.Context, version Version) error
	ListVersions(ctx context.Context, resumeID string) ([]Version, error)
}
