package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/internal/utils"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/google/uuid"
)

// CreateRequest opens a new matchmaking request for the user
func (uc *MatchmakingUC) CreateRequest(ctx context.Context, userID uuid.UUID, input models.CreateMatchRequest) (*models.MatchRequest, error) {
	now := uc.now()

	if input.GameID <= 0 {
		return nil, invalid("game_id must be positive")
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, invalid("latitude and longitude are required")
	}

	request := &models.MatchRequest{
		UserID:    userID,
		GameID:    input.GameID,
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		RadiusKm:  uc.defaultRadiusKm(),
		Status:    models.MatchRequestStatusPending,
		ExpiresAt: now.Add(uc.defaultTTL()),
	}
	if input.RadiusKm != nil {
		request.RadiusKm = *input.RadiusKm
	}
	if input.ExpiresAt != nil {
		request.ExpiresAt = *input.ExpiresAt
	}

	if err := uc.validate(request, now); err != nil {
		return nil, err
	}

	exists, err := uc.repo.HasActiveRequest(ctx, userID, request.GameID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check active requests: %w", err)
	}
	if exists {
		return nil, matchmaking.ErrActiveRequestExists
	}

	request.Geohash = utils.EncodeLocation(request.Location(), uc.geohashPrecision())

	created, err := uc.repo.CreateRequest(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create matchmaking request: %w", err)
	}

	uc.cacheActive(ctx, created, now)

	event := models.RequestCreatedEvent{
		RequestID: created.ID,
		UserID:    created.UserID,
		GameID:    created.GameID,
		Geohash:   created.Geohash,
		RadiusKm:  created.RadiusKm,
		ExpiresAt: created.ExpiresAt,
	}
	if err := uc.gw.PublishRequestCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish request created event",
			logger.Int64("request_id", created.ID),
			logger.Err(err))
	}

	return created, nil
}

// GetRequest returns a request the actor is allowed to see
func (uc *MatchmakingUC) GetRequest(ctx context.Context, actor models.Actor, id int64) (*models.MatchRequest, error) {
	request, err := uc.repo.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(request) {
		return nil, matchmaking.ErrForbidden
	}
	return request, nil
}

// UpdateRequest applies a partial update. A request past its expiry is moved
// to expired instead and the update is rejected.
func (uc *MatchmakingUC) UpdateRequest(ctx context.Context, actor models.Actor, id int64, input models.UpdateMatchRequest) (*models.MatchRequest, error) {
	request, err := uc.GetRequest(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if request.IsExpired(now) {
		if request.Status.CanTransitionTo(models.MatchRequestStatusExpired) {
			if _, err := uc.repo.MarkExpired(ctx, request.ID); err != nil {
				return nil, fmt.Errorf("failed to expire matchmaking request: %w", err)
			}
			if err := uc.repo.InvalidateActiveRequest(ctx, request.UserID); err != nil {
				logger.WarnCtx(ctx, "Failed to invalidate active request cache",
					logger.Int64("request_id", request.ID),
					logger.Err(err))
			}
		}
		return nil, matchmaking.ErrRequestExpired
	}
	if request.Status.IsTerminal() {
		return nil, matchmaking.ErrTerminalStatus
	}

	if input.GameID != nil {
		if *input.GameID <= 0 {
			return nil, invalid("game_id must be positive")
		}
		request.GameID = *input.GameID
	}
	if input.Latitude != nil {
		request.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		request.Longitude = *input.Longitude
	}
	if input.RadiusKm != nil {
		request.RadiusKm = *input.RadiusKm
	}
	if input.ExpiresAt != nil {
		request.ExpiresAt = *input.ExpiresAt
	}

	if err := uc.validate(request, now); err != nil {
		return nil, err
	}

	request.Geohash = utils.EncodeLocation(request.Location(), uc.geohashPrecision())

	if err := uc.repo.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}

	// The edited request need not be the owner's most recent one, so the
	// entry is dropped and rebuilt from the store on the next lookup.
	if err := uc.repo.InvalidateActiveRequest(ctx, request.UserID); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate active request cache",
			logger.Int64("request_id", request.ID),
			logger.Err(err))
	}
	return request, nil
}

// ListActiveRequests lists the active requests matching filter, newest first
func (uc *MatchmakingUC) ListActiveRequests(ctx context.Context, filter models.RequestFilter) ([]*models.MatchRequest, error) {
	return uc.repo.ListActiveRequests(ctx, filter, uc.now())
}

func (uc *MatchmakingUC) validate(request *models.MatchRequest, now time.Time) error {
	if request.Latitude < -90 || request.Latitude > 90 {
		return invalid("latitude must be between -90 and 90")
	}
	if request.Longitude < -180 || request.Longitude > 180 {
		return invalid("longitude must be between -180 and 180")
	}
	if request.RadiusKm <= 0 {
		return invalid("radius_km must be positive")
	}
	if maxRadius := uc.cfg.Matchmaking.MaxRadiusKm; maxRadius > 0 && request.RadiusKm > maxRadius {
		return invalid(fmt.Sprintf("radius_km must not exceed %d", maxRadius))
	}
	if !request.ExpiresAt.After(now) {
		return invalid("expires_at must be in the future")
	}
	return nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", matchmaking.ErrInvalidRequest, reason)
}
