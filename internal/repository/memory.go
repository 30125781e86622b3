package repository

import (
	"context"
	"sync"

	"github.com/jobscout/jobscout-backend/internal/apperrors"
	"github.com/jobscout/jobscout-backend/internal/models"
)

// Ensure MemoryJobRepository implements JobRepository.
var _ JobRepository = (*MemoryJobRepository)(nil)

// MemoryJobRepository provides an in-memory implementation for
// development/testing. IDs are assigned sequentially on insert, like the
// database does, and keep growing across refresh cycles.
type MemoryJobRepository struct {
	mu     sync.RWMutex
	jobs   []models.Job
	nextID uint
}

// NewMemoryJobRepository constructs an empty MemoryJobRepository.
func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{}
}

// ReplaceAll swaps the collection for the batch and assigns IDs in place,
// so the caller's slice carries them afterwards, same as the gorm insert.
func (r *MemoryJobRepository) ReplaceAll(_ context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range jobs {
		r.nextID++
		jobs[i].ID = r.nextID
	}

	r.jobs = make([]models.Job, len(jobs))
	copy(r.jobs, jobs)
	return nil
}

func (r *MemoryJobRepository) List(_ context.Context, offset, limit int) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.jobs) {
		return []models.Job{}, nil
	}
	end := offset + limit
	if end > len(r.jobs) {
		end = len(r.jobs)
	}

	out := make([]models.Job, end-offset)
	copy(out, r.jobs[offset:end])
	return out, nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, id uint) (models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, job := range r.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, apperrors.ErrNotFound
}
