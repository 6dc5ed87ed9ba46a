package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	natspkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/nats"
	nrpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/newrelic"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// UserHandler consumes account events that affect matchmaking requests.
// It runs as a supervised service: Serve subscribes and holds the
// subscription until the context is cancelled.
type UserHandler struct {
	matchmakingUC matchmaking.MatchmakingUC
	natsClient    *natspkg.Client
	nrApp         *newrelic.Application
}

// NewUserHandler creates a new user events NATS handler
func NewUserHandler(matchmakingUC matchmaking.MatchmakingUC, client *natspkg.Client, nrApp *newrelic.Application) *UserHandler {
	return &UserHandler{
		matchmakingUC: matchmakingUC,
		natsClient:    client,
		nrApp:         nrApp,
	}
}

// Serve implements suture.Service
func (h *UserHandler) Serve(ctx context.Context) error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectUserDeleted, constants.QueueMatchmaking, h.handleUserDeleted)
	if err != nil {
		return fmt.Errorf("failed to subscribe to user deleted events: %w", err)
	}

	logger.Info("Subscribed to user deleted events",
		logger.String("subject", constants.SubjectUserDeleted),
		logger.String("queue_group", constants.QueueMatchmaking))

	<-ctx.Done()

	if err := sub.Unsubscribe(); err != nil {
		logger.Warn("Failed to unsubscribe from user deleted events", logger.Err(err))
	}
	return ctx.Err()
}

// String names the service in supervisor events
func (h *UserHandler) String() string {
	return "user-deleted-consumer"
}

func (h *UserHandler) handleUserDeleted(data []byte) error {
	txn, ctx := nrpkg.StartBackgroundTransaction(context.Background(), h.nrApp, "nats/"+constants.SubjectUserDeleted)
	if txn != nil {
		defer txn.End()
	}

	var event models.UserDeletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorCtx(ctx, "Failed to unmarshal user deleted event", logger.Err(err))
		return err
	}

	logger.InfoCtx(ctx, "Received user deleted event",
		logger.String("user_id", event.UserID.String()))

	if err := h.matchmakingUC.HandleUserDeleted(ctx, event); err != nil {
		if txn != nil {
			txn.NoticeError(err)
		}
		return err
	}
	return nil
}
