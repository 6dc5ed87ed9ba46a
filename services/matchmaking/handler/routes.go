package handler

import (
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/database"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/middleware"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	natspkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/nats"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	httpHandler "github.com/AxelRadin/LudoKan-sub000/services/matchmaking/handler/http"
	natsHandler "github.com/AxelRadin/LudoKan-sub000/services/matchmaking/handler/nats"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler combines all handlers for the matchmaking service
type Handler struct {
	cfg             *models.Config
	redisClient     *database.RedisClient
	matchmakingHTTP *httpHandler.MatchmakingHandler
	userNATS        *natsHandler.UserHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	matchmakingUC matchmaking.MatchmakingUC,
	natsClient *natspkg.Client,
	redisClient *database.RedisClient,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		cfg:             cfg,
		redisClient:     redisClient,
		matchmakingHTTP: httpHandler.NewMatchmakingHandler(matchmakingUC, cfg),
		userNATS:        natsHandler.NewUserHandler(matchmakingUC, natsClient, nrApp),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/matchmaking", middleware.JWTAuthMiddleware(h.cfg.JWT))

	createLimit := []echo.MiddlewareFunc{}
	if h.redisClient != nil && h.cfg.Matchmaking.CreateRateLimit > 0 {
		createLimit = append(createLimit, middleware.UserRateLimiter(
			h.cfg.Matchmaking.CreateRateLimit,
			h.cfg.Matchmaking.CreateRateWindow,
			h.redisClient.GetClient(),
		))
	}

	requests := api.Group("/requests")
	requests.POST("", h.matchmakingHTTP.CreateRequest, createLimit...)
	requests.GET("", h.matchmakingHTTP.ListRequests)
	requests.POST("/expire", h.matchmakingHTTP.ExpireRequests, middleware.RequireRole(constants.RoleAdmin))
	requests.GET("/:id", h.matchmakingHTTP.GetRequest)
	requests.PATCH("/:id", h.matchmakingHTTP.UpdateRequest)

	api.GET("/matches", h.matchmakingHTTP.GetMatches)
	api.GET("/nearby", h.matchmakingHTTP.Nearby)
}

// UserConsumer returns the supervised consumer of account events
func (h *Handler) UserConsumer() *natsHandler.UserHandler {
	return h.userNATS
}
