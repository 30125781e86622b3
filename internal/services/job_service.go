package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jobscout/jobscout-backend/internal/apperrors"
	"github.com/jobscout/jobscout-backend/internal/dtos"
	"github.com/jobscout/jobscout-backend/internal/jsearch"
	"github.com/jobscout/jobscout-backend/internal/models"
	"github.com/jobscout/jobscout-backend/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Fetcher is the subset of the jsearch client the service depends on.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]jsearch.Listing, error)
}

// JobService runs the fetch-normalize-replace pipeline and the read paths
// against the persisted collection.
type JobService struct {
	repo    repository.JobRepository
	fetcher Fetcher
	logger  *zap.Logger
}

// NewJobService creates the service with its collaborators.
func NewJobService(repo repository.JobRepository, fetcher Fetcher, logger *zap.Logger) *JobService {
	return &JobService{
		repo:    repo,
		fetcher: fetcher,
		logger:  logger,
	}
}

// BuildSearchQuery concatenates the present filters, in fixed order, into
// one free-text query: title, location, "<years> years".
func BuildSearchQuery(filters dtos.SearchFilters) string {
	parts := make([]string, 0, 3)
	if filters.Title != "" {
		parts = append(parts, filters.Title)
	}
	if filters.Location != "" {
		parts = append(parts, filters.Location)
	}
	if filters.Experience != "" {
		parts = append(parts, filters.Experience+" years")
	}
	return strings.Join(parts, " ")
}

// Search fetches fresh listings for the filters, replaces the persisted
// collection with them, and returns the fetched batch directly.
//
// External-source failures are absorbed: the caller gets an empty batch and
// the collection keeps its previous content. Store failures surface.
func (s *JobService) Search(ctx context.Context, filters dtos.SearchFilters) ([]models.Job, error) {
	if filters.Empty() {
		return nil, apperrors.ErrValidation
	}

	query := BuildSearchQuery(filters)

	listings, err := s.fetcher.Search(ctx, query)
	if err != nil {
		s.logger.Warn("jsearch search failed",
			zap.String("query", query),
			zap.Error(err))
		return []models.Job{}, nil
	}

	jobs := make([]models.Job, 0, len(listings))
	for _, listing := range listings {
		jobs = append(jobs, mapListing(listing))
	}

	if len(jobs) == 0 {
		s.logger.Info("search returned no listings", zap.String("query", query))
		return jobs, nil
	}

	if err := s.repo.ReplaceAll(ctx, jobs); err != nil {
		return nil, fmt.Errorf("refresh job cache: %w", err)
	}

	s.logger.Info("job cache refreshed",
		zap.String("query", query),
		zap.Int("count", len(jobs)))
	return jobs, nil
}

// ListJobs returns one page of the persisted collection in insertion order.
// Non-positive page or limit fall back to the defaults (1 and 10).
func (s *JobService) ListJobs(ctx context.Context, page, limit int) ([]models.Job, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return s.repo.List(ctx, (page-1)*limit, limit)
}

// GetJob returns the persisted job with the given store-assigned ID.
func (s *JobService) GetJob(ctx context.Context, id uint) (models.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// mapListing normalizes one raw listing into the local Job shape. Missing
// fields degrade to the fallbacks, never to an error.
func mapListing(listing jsearch.Listing) models.Job {
	location := listing.City
	if location == "" {
		location = listing.State
	}
	if location == "" {
		location = "Remote"
	}

	return models.Job{
		Title:      listing.Title,
		Company:    listing.Employer,
		Location:   location,
		Experience: experienceYears(listing.RequiredExperience.Months),
		Link:       listing.ApplyLink,
	}
}

// experienceYears converts the provider's required-experience figure (months,
// sometimes quoted, sometimes null) to whole years. Anything unparseable is 0.
func experienceYears(raw json.RawMessage) int {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return 0
	}
	months, err := strconv.ParseFloat(s, 64)
	if err != nil || months <= 0 {
		return 0
	}
	return int(math.Round(months / 12))
}
