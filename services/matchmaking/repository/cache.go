package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// AcquireSweepLock takes the cluster wide sweep lock for owner
func (r *MatchRequestRepo) AcquireSweepLock(ctx context.Context, owner string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, constants.KeySweepLock, owner, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	return ok, nil
}

// ReleaseSweepLock releases the sweep lock if owner still holds it
func (r *MatchRequestRepo) ReleaseSweepLock(ctx context.Context, owner string) error {
	released, err := r.redisClient.ReleaseIfOwner(ctx, constants.KeySweepLock, owner)
	if err != nil {
		return fmt.Errorf("failed to release sweep lock: %w", err)
	}
	if !released {
		logger.Debug("Sweep lock already released or taken over",
			logger.String("owner", owner))
	}
	return nil
}

// CacheActiveRequest remembers the user's current active request id
func (r *MatchRequestRepo) CacheActiveRequest(ctx context.Context, userID uuid.UUID, requestID int64, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf(constants.KeyActiveRequest, userID.String())
	if err := r.redisClient.Set(ctx, key, strconv.FormatInt(requestID, 10), ttl); err != nil {
		return fmt.Errorf("failed to cache active request: %w", err)
	}
	return nil
}

// GetCachedActiveRequest returns the cached active request id, if any
func (r *MatchRequestRepo) GetCachedActiveRequest(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	key := fmt.Sprintf(constants.KeyActiveRequest, userID.String())

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cached active request: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid cached active request id %q: %w", val, err)
	}

	return id, true, nil
}

// InvalidateActiveRequest drops the cached active request id
func (r *MatchRequestRepo) InvalidateActiveRequest(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyActiveRequest, userID.String())
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate active request: %w", err)
	}
	return nil
}
