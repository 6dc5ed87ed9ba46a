package gateway

import (
	"context"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	natspkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/nats"
	nrpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/newrelic"
)

// MatchmakingGW publishes matchmaking events to NATS
type MatchmakingGW struct {
	natsClient *natspkg.Client
}

// NewMatchmakingGW creates a new NATS gateway instance
func NewMatchmakingGW(client *natspkg.Client) *MatchmakingGW {
	return &MatchmakingGW{
		natsClient: client,
	}
}

// PublishRequestCreated announces a newly opened request
func (g *MatchmakingGW) PublishRequestCreated(ctx context.Context, event models.RequestCreatedEvent) error {
	logger.DebugCtx(ctx, "Publishing request created event",
		logger.Int64("request_id", event.RequestID),
		logger.Int64("game_id", event.GameID))

	return g.publish(ctx, constants.SubjectRequestCreated, event)
}

// PublishRequestsExpired announces the ids moved to expired by a sweep
func (g *MatchmakingGW) PublishRequestsExpired(ctx context.Context, event models.RequestsExpiredEvent) error {
	return g.publish(ctx, constants.SubjectRequestsExpired, event)
}

// PublishMatchFound announces the ranked candidates found for a request
func (g *MatchmakingGW) PublishMatchFound(ctx context.Context, event models.MatchFoundEvent) error {
	logger.DebugCtx(ctx, "Publishing match found event",
		logger.Int64("request_id", event.RequestID),
		logger.Int("candidates", len(event.Candidates)))

	return g.publish(ctx, constants.SubjectMatchFound, event)
}

func (g *MatchmakingGW) publish(ctx context.Context, subject string, event interface{}) error {
	return nrpkg.WithMessageSegment(ctx, subject, func() error {
		return g.natsClient.PublishJSON(subject, event)
	})
}
