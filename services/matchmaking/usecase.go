package matchmaking

import (
	"context"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/google/uuid"
)

// MatchmakingUC defines the interface for matchmaking business logic
type MatchmakingUC interface {
	// Matcher
	NearbyRequests(ctx context.Context, query models.NearbyQuery) ([]*models.MatchRequest, error)
	FindMatches(ctx context.Context, request *models.MatchRequest) ([]models.MatchResult, error)
	GetMatchesForUser(ctx context.Context, userID uuid.UUID) (*models.MatchRequest, []models.MatchResult, error)

	// Requests
	CreateRequest(ctx context.Context, userID uuid.UUID, input models.CreateMatchRequest) (*models.MatchRequest, error)
	GetRequest(ctx context.Context, actor models.Actor, id int64) (*models.MatchRequest, error)
	UpdateRequest(ctx context.Context, actor models.Actor, id int64, input models.UpdateMatchRequest) (*models.MatchRequest, error)
	ListActiveRequests(ctx context.Context, filter models.RequestFilter) ([]*models.MatchRequest, error)

	// Expiry
	ExpireStale(ctx context.Context) (int64, error)
	RunScheduledSweep(ctx context.Context, owner string) (int64, bool, error)

	// Events
	HandleUserDeleted(ctx context.Context, event models.UserDeletedEvent) error
}
