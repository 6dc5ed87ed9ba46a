package matchmaking

import (
	"context"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/google/uuid"
)

// MatchRequestRepo defines the interface for matchmaking request data access operations
type MatchRequestRepo interface {
	// Request CRUD operations
	CreateRequest(ctx context.Context, req *models.MatchRequest) (*models.MatchRequest, error)
	GetRequest(ctx context.Context, id int64) (*models.MatchRequest, error)
	UpdateRequest(ctx context.Context, req *models.MatchRequest) error
	MarkExpired(ctx context.Context, id int64) (bool, error)
	DeleteRequestsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Active request lookups, all evaluated against now
	ListActiveRequests(ctx context.Context, filter models.RequestFilter, now time.Time) ([]*models.MatchRequest, error)
	FindActiveWithinBBox(ctx context.Context, bbox models.BoundingBox, now time.Time) ([]*models.MatchRequest, error)
	GetActiveRequestByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*models.MatchRequest, error)
	HasActiveRequest(ctx context.Context, userID uuid.UUID, gameID int64, now time.Time) (bool, error)

	// Expiry sweep
	ExpireStale(ctx context.Context, now time.Time) ([]int64, error)

	// Redis coordination and cache
	AcquireSweepLock(ctx context.Context, owner string, ttl time.Duration) (bool, error)
	ReleaseSweepLock(ctx context.Context, owner string) error
	CacheActiveRequest(ctx context.Context, userID uuid.UUID, requestID int64, ttl time.Duration) error
	GetCachedActiveRequest(ctx context.Context, userID uuid.UUID) (int64, bool, error)
	InvalidateActiveRequest(ctx context.Context, userID uuid.UUID) error
}
