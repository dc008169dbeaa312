package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo implements Repo in memory for dev and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	resumes  map[string]Resume
	versions map[string][]Version
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes:  make(map[string]Resume),
		versions: make(map[string][]Version),
	}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

// Get returns a resume by id.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// List returns all resumes, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, 0, len(r.resumes))
	for _, resume := range r.resumes {
		out = append(out, resume)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// IncrementGeneration bumps the generation counter and returns the new value.
func (r *MemoryRepo) IncrementGeneration(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[id]
	if !ok {
		return 0, ErrNotFound
	}
	resume.GenerationCount++
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[id] = resume
	return resume.GenerationCount, nil
}

// CreateVersion stores a generated version.
func (r *MemoryRepo) CreateVersion(ctx context.Context, version Version) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[version.ResumeID] = append(r.versions[version.ResumeID], version)
	return nil
}

// ListVersions returns all versions for a resume, newest first.
func (r *MemoryRepo) ListVersions(ctx context.Context, resumeID string) ([]Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.versions[resumeID]
	out := make([]Version, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VersionNumber > out[j].VersionNumber
	})
	return out, nil
}
