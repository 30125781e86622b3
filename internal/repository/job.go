// Package repository persists and loads jobs from storage.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobscout/jobscout-backend/internal/apperrors"
	"github.com/jobscout/jobscout-backend/internal/models"
)

// JobRepository is the store handle the service layer works against.
type JobRepository interface {
	// ReplaceAll clears the collection and inserts the batch. An empty
	// batch leaves the collection untouched.
	ReplaceAll(ctx context.Context, jobs []models.Job) error

	// List returns the window of the collection at the given offset, in
	// insertion order.
	List(ctx context.Context, offset, limit int) ([]models.Job, error)

	// GetByID returns the matching job or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id uint) (models.Job, error)
}

// Ensure GormJobRepository implements JobRepository.
var _ JobRepository = (*GormJobRepository)(nil)

// GormJobRepository implements JobRepository on Postgres via gorm.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a repository backed by the given connection.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// ReplaceAll runs the clear and the insert in one transaction, so readers
// see either the old batch or the new one, never the empty mid-state.
func (r *GormJobRepository) ReplaceAll(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Job{}).Error; err != nil {
			return fmt.Errorf("clear jobs: %w", err)
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return fmt.Errorf("insert jobs: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace jobs: %w", err)
	}
	return nil
}

func (r *GormJobRepository) List(ctx context.Context, offset, limit int) ([]models.Job, error) {
	jobs := make([]models.Job, 0, limit)
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *GormJobRepository) GetByID(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, apperrors.ErrNotFound
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return job, nil
}
