package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"go.uber.org/zap"
)

const (
	statsCacheKey = "expertbridge:admin:stats"
	statsCacheTTL = 60 * time.Second
)

// GetStats assembles the dashboard snapshot. With a cache wired in, the
// snapshot is held for a minute; slightly stale numbers are fine for a
// dashboard.
func (s *DefaultAdminService) GetStats() (*Stats, error) {
	if cached := s.cachedStats(); cached != nil {
		return cached, nil
	}

	total, err := s.Professionals.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count professionals: %w", err)
	}
	pending, err := s.Professionals.CountByVerificationStatus(models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending professionals: %w", err)
	}
	approved, err := s.Professionals.CountByVerificationStatus(models.VerificationApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count approved professionals: %w", err)
	}
	rejected, err := s.Professionals.CountByVerificationStatus(models.VerificationRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to count rejected professionals: %w", err)
	}
	totalReviews, err := s.Reviews.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}
	pendingReviews, err := s.Reviews.CountByStatus(models.ReviewPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending reviews: %w", err)
	}
	byCategory, err := s.Professionals.CategoryCounts(false)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	stats := &Stats{
		TotalProfessionals:    total,
		PendingProfessionals:  pending,
		ApprovedProfessionals: approved,
		RejectedProfessionals: rejected,
		TotalReviews:          totalReviews,
		PendingReviews:        pendingReviews,
		ByCategory:            byCategory,
	}
	s.cacheStats(stats)
	return stats, nil
}

func (s *DefaultAdminService) cachedStats() *Stats {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, err := s.Cache.Get(ctx, statsCacheKey).Result()
	if err != nil {
		return nil
	}
	var stats Stats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *DefaultAdminService) cacheStats(stats *Stats) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache admin stats", zap.Error(err))
	}
}
