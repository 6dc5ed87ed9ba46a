package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/internal/utils"
	"github.com/google/uuid"
)

// NearbyRequests returns the candidates within range of the query point.
// A candidate is in range when its distance is at most the smaller of the
// query radius and its own radius. The result is not sorted.
func (uc *MatchmakingUC) NearbyRequests(ctx context.Context, query models.NearbyQuery) ([]*models.MatchRequest, error) {
	results, err := uc.nearby(ctx, query)
	if err != nil {
		return nil, err
	}

	requests := make([]*models.MatchRequest, 0, len(results))
	for _, r := range results {
		requests = append(requests, r.Request)
	}
	return requests, nil
}

// FindMatches ranks the active requests compatible with request by distance.
// An expired request gets an empty result without touching the store.
func (uc *MatchmakingUC) FindMatches(ctx context.Context, request *models.MatchRequest) ([]models.MatchResult, error) {
	if request == nil || request.IsExpired(uc.now()) {
		return []models.MatchResult{}, nil
	}

	gameID := request.GameID
	userID := request.UserID
	results, err := uc.nearby(ctx, models.NearbyQuery{
		Latitude:      request.Latitude,
		Longitude:     request.Longitude,
		RadiusKm:      float64(request.RadiusKm),
		GameID:        &gameID,
		ExcludeUserID: &userID,
	})
	if err != nil {
		return nil, err
	}

	sortByDistance(results)
	return results, nil
}

// GetMatchesForUser finds matches for the user's current active request and
// announces them when any were found.
func (uc *MatchmakingUC) GetMatchesForUser(ctx context.Context, userID uuid.UUID) (*models.MatchRequest, []models.MatchResult, error) {
	now := uc.now()

	request, err := uc.activeRequestForUser(ctx, userID, now)
	if err != nil {
		return nil, nil, err
	}

	results, err := uc.FindMatches(ctx, request)
	if err != nil {
		return nil, nil, err
	}

	if len(results) > 0 {
		event := models.MatchFoundEvent{
			RequestID:  request.ID,
			UserID:     request.UserID,
			GameID:     request.GameID,
			Candidates: make([]models.MatchCandidate, 0, len(results)),
			FoundAt:    now,
		}
		for _, r := range results {
			event.Candidates = append(event.Candidates, models.MatchCandidate{
				RequestID:  r.Request.ID,
				UserID:     r.Request.UserID,
				DistanceKm: r.DistanceKm,
			})
		}
		if err := uc.gw.PublishMatchFound(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish match found event",
				logger.Int64("request_id", request.ID),
				logger.Err(err))
		}
	}

	return request, results, nil
}

func (uc *MatchmakingUC) nearby(ctx context.Context, query models.NearbyQuery) ([]models.MatchResult, error) {
	pool := query.Candidates
	if pool == nil {
		bbox := utils.ComputeBoundingBox(query.Latitude, query.Longitude, query.RadiusKm)

		var err error
		pool, err = uc.repo.FindActiveWithinBBox(ctx, bbox, uc.now())
		if err != nil {
			return nil, err
		}
	}

	results := make([]models.MatchResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate == nil {
			continue
		}
		if query.GameID != nil && candidate.GameID != *query.GameID {
			continue
		}
		if query.ExcludeUserID != nil && candidate.UserID == *query.ExcludeUserID {
			continue
		}

		distance := utils.Haversine(query.Latitude, query.Longitude, candidate.Latitude, candidate.Longitude)
		if distance <= math.Min(query.RadiusKm, float64(candidate.RadiusKm)) {
			results = append(results, models.MatchResult{Request: candidate, DistanceKm: distance})
		}
	}

	return results, nil
}

// sortByDistance orders results nearest first, equal distances by request id
func sortByDistance(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Request.ID < results[j].Request.ID
	})
}

// activeRequestForUser resolves the user's most recent active request,
// consulting the cache first and re-validating the cached record.
func (uc *MatchmakingUC) activeRequestForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*models.MatchRequest, error) {
	cachedID, found, err := uc.repo.GetCachedActiveRequest(ctx, userID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read active request cache",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}

	if found {
		request, err := uc.repo.GetRequest(ctx, cachedID)
		if err == nil && request.UserID == userID && request.IsActive(now) {
			return request, nil
		}
		if err := uc.repo.InvalidateActiveRequest(ctx, userID); err != nil {
			logger.WarnCtx(ctx, "Failed to invalidate active request cache",
				logger.String("user_id", userID.String()),
				logger.Err(err))
		}
	}

	request, err := uc.repo.GetActiveRequestByUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	uc.cacheActive(ctx, request, now)
	return request, nil
}

func (uc *MatchmakingUC) cacheActive(ctx context.Context, request *models.MatchRequest, now time.Time) {
	if err := uc.repo.CacheActiveRequest(ctx, request.UserID, request.ID, request.ExpiresAt.Sub(now)); err != nil {
		logger.WarnCtx(ctx, "Failed to cache active request",
			logger.Int64("request_id", request.ID),
			logger.Err(err))
	}
}
