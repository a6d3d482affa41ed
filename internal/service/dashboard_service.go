package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/suraksha-health/training-portal-api/internal/models"
	appErrors "github.com/suraksha-health/training-portal-api/pkg/errors"
)

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type cacheMetrics interface {
	RecordCacheOperation(hit bool)
}

// DashboardService aggregates the stat cards shown on login. Stats are
// computed over the rows the actor is allowed to see and cached per
// user+role for a short TTL.
type DashboardService struct {
	professionals professionalRepository
	trainees      traineeRepository
	trainings     trainingRepository
	cache         dashboardCache
	cacheTTL      time.Duration
	metrics       cacheMetrics
	logger        *zap.Logger
}

// NewDashboardService constructs a DashboardService. cache and metrics may be
// nil, in which case every call computes fresh stats and nothing is recorded.
func NewDashboardService(
	professionals professionalRepository,
	trainees traineeRepository,
	trainings trainingRepository,
	cache dashboardCache,
	cacheTTL time.Duration,
	metrics cacheMetrics,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		professionals: professionals,
		trainees:      trainees,
		trainings:     trainings,
		cache:         cache,
		cacheTTL:      cacheTTL,
		metrics:       metrics,
		logger:        logger,
	}
}

// Stats returns the actor's dashboard numbers. Admins additionally get the
// professional headcount.
func (s *DashboardService) Stats(ctx context.Context, actor Actor) (*models.DashboardStats, error) {
	key := s.cacheKey(actor)
	if s.cache != nil {
		var cached models.DashboardStats
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			s.recordCache(true)
			return &cached, nil
		}
		s.recordCache(false)
	}

	stats := &models.DashboardStats{}

	trainees, err := s.trainees.List(ctx, actor.scopeOwner())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainees")
	}
	stats.TotalTrainees = len(trainees)
	for _, t := range trainees {
		if t.CPRTraining.Bool() {
			stats.CPRTrained++
		}
		if t.FirstAidKitGiven.Bool() {
			stats.FirstAidKitsGiven++
		}
		if t.LifeSavingSkills.Bool() {
			stats.LifeSavingSkills++
		}
	}

	trainings, err := s.trainings.List(ctx, actor.scopeOwner())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch trainings")
	}
	stats.TotalTrainings = len(trainings)

	if actor.IsAdmin() {
		professionals, err := s.professionals.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch professionals")
		}
		stats.TotalProfessionals = len(professionals)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.String("key", key), zap.Error(err))
		}
	}
	return stats, nil
}

// Invalidate drops every cached dashboard. Mutation paths call this so the
// next dashboard load reflects the change.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func (s *DashboardService) recordCache(hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit)
	}
}

func (s *DashboardService) cacheKey(actor Actor) string {
	if actor.IsAdmin() {
		return "dashboard:admin"
	}
	return fmt.Sprintf("dashboard:professional:%d", actor.UserID)
}
