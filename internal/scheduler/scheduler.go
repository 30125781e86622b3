// Package scheduler wires up the cron job that periodically refreshes the
// persisted job collection.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jobscout/jobscout-backend/internal/dtos"
	"github.com/jobscout/jobscout-backend/internal/models"
)

// JobSearcher is the slice of the job service the scheduler drives.
type JobSearcher interface {
	Search(ctx context.Context, filters dtos.SearchFilters) ([]models.Job, error)
}

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron   *cron.Cron
	jobs   JobSearcher
	query  string // default title filter for scheduled refreshes
	spec   string // cron spec, e.g. "@every 6h"
	logger *zap.Logger
}

// New creates a Scheduler that fires every intervalHours hours.
func New(jobs JobSearcher, query string, intervalHours int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		query:  query,
		spec:   fmt.Sprintf("@every %dh", intervalHours),
		logger: logger,
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so the collection is populated without waiting for the first
// tick; the listener does not wait for it.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("refresh scheduler started", zap.String("spec", s.spec))

	go s.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("refresh scheduler stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	s.logger.Info("refresh cycle started", zap.String("query", s.query))

	jobs, err := s.jobs.Search(ctx, dtos.SearchFilters{Title: s.query})
	if err != nil {
		s.logger.Error("refresh cycle failed", zap.Error(err))
		return
	}

	s.logger.Info("refresh cycle finished", zap.Int("count", len(jobs)))
}
