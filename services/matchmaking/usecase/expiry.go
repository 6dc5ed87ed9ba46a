package usecase

import (
	"context"
	"fmt"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/google/uuid"
)

// ExpireStale moves every pending request past its expiry to expired and
// returns how many changed
func (uc *MatchmakingUC) ExpireStale(ctx context.Context) (int64, error) {
	now := uc.now()

	ids, err := uc.repo.ExpireStale(ctx, now)
	if err != nil {
		return 0, err
	}

	count := int64(len(ids))
	if count == 0 {
		return 0, nil
	}

	logger.InfoCtx(ctx, "Expired matchmaking requests",
		logger.Int64("count", count),
		logger.Int64s("request_ids", ids))

	event := models.RequestsExpiredEvent{
		RequestIDs: ids,
		Count:      count,
		ExpiredAt:  now,
	}
	if err := uc.gw.PublishRequestsExpired(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish requests expired event",
			logger.Int64("count", count),
			logger.Err(err))
	}

	return count, nil
}

// RunScheduledSweep runs ExpireStale while holding the sweep lock. The bool
// result is false when another owner holds the lock and nothing ran.
func (uc *MatchmakingUC) RunScheduledSweep(ctx context.Context, owner string) (int64, bool, error) {
	acquired, err := uc.repo.AcquireSweepLock(ctx, owner, uc.sweepLockTTL())
	if err != nil {
		return 0, false, err
	}
	if !acquired {
		logger.DebugCtx(ctx, "Sweep lock held elsewhere, skipping",
			logger.String("owner", owner))
		return 0, false, nil
	}
	defer func() {
		if err := uc.repo.ReleaseSweepLock(ctx, owner); err != nil {
			logger.WarnCtx(ctx, "Failed to release sweep lock",
				logger.String("owner", owner),
				logger.Err(err))
		}
	}()

	count, err := uc.ExpireStale(ctx)
	if err != nil {
		return 0, true, err
	}
	return count, true, nil
}

// HandleUserDeleted removes every request owned by a deleted account
func (uc *MatchmakingUC) HandleUserDeleted(ctx context.Context, event models.UserDeletedEvent) error {
	if event.UserID == uuid.Nil {
		return fmt.Errorf("%w: user_id is required", matchmaking.ErrInvalidRequest)
	}

	deleted, err := uc.repo.DeleteRequestsByUser(ctx, event.UserID)
	if err != nil {
		return err
	}

	if err := uc.repo.InvalidateActiveRequest(ctx, event.UserID); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate active request cache",
			logger.String("user_id", event.UserID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Removed matchmaking requests of deleted user",
		logger.String("user_id", event.UserID.String()),
		logger.Int64("deleted", deleted))

	return nil
}
