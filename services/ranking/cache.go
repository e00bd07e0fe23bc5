package ranking

import (
	"context"
	"encoding/json"
	"time"

	"iscort/config"
	"iscort/models"
	"iscort/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	homeRankingsKey = "rankings:home"
	homeListLimit   = 6
)

// HomeRankings returns the full home-page bundle, served from Redis when a
// fresh copy exists. A cache failure degrades to a direct rebuild.
func (s *DefaultRankingService) HomeRankings(ctx context.Context) (*models.HomeRankings, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, homeRankingsKey).Result()
		if err == nil {
			var home models.HomeRankings
			if err := json.Unmarshal([]byte(cached), &home); err == nil {
				return &home, nil
			}
			logger.Warn("discarding malformed cached rankings", zap.Error(err))
		} else if err != redis.Nil {
			logger.Warn("ranking cache read failed", zap.Error(err))
		}
	}

	home, err := s.buildHomeRankings(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		payload, err := json.Marshal(home)
		if err == nil {
			ttl := time.Duration(config.AppConfig.RankingCacheTTL) * time.Second
			if err := s.Cache.Set(ctx, homeRankingsKey, payload, ttl).Err(); err != nil {
				logger.Warn("ranking cache write failed", zap.Error(err))
			}
		}
	}
	return home, nil
}

// InvalidateHomeRankings drops the cached home-page bundle so the next read
// rebuilds it. Called after batch recomputations.
func (s *DefaultRankingService) InvalidateHomeRankings(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, homeRankingsKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate ranking cache", zap.Error(err))
	}
}

func (s *DefaultRankingService) buildHomeRankings(ctx context.Context) (*models.HomeRankings, error) {
	female, err := s.TopByCategory(ctx, models.CategoryFemale, homeListLimit)
	if err != nil {
		return nil, err
	}
	male, err := s.TopByCategory(ctx, models.CategoryMale, homeListLimit)
	if err != nil {
		return nil, err
	}
	trans, err := s.TopByCategory(ctx, models.CategoryTrans, homeListLimit)
	if err != nil {
		return nil, err
	}
	featured, err := s.FeaturedThisMonth(ctx, homeListLimit)
	if err != nil {
		return nil, err
	}
	fresh, err := s.NewAndVerified(ctx, homeListLimit)
	if err != nil {
		return nil, err
	}
	stats, err := s.SiteStats(ctx)
	if err != nil {
		return nil, err
	}

	return &models.HomeRankings{
		TopFemale:       female,
		TopMale:         male,
		TopTrans:        trans,
		FeaturedOfMonth: featured,
		NewAndVerified:  fresh,
		Stats:           *stats,
	}, nil
}
