package matchmaking

import (
	"context"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
)

// MatchmakingGW defines the matchmaking gateways interface
type MatchmakingGW interface {
	PublishRequestCreated(ctx context.Context, event models.RequestCreatedEvent) error
	PublishRequestsExpired(ctx context.Context, event models.RequestsExpiredEvent) error
	PublishMatchFound(ctx context.Context, event models.MatchFoundEvent) error
}
