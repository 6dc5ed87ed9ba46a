package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/middleware"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/validator"
	"github.com/AxelRadin/LudoKan-sub000/internal/utils"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/labstack/echo/v4"
)

const fallbackNearbyRadiusKm = 10

// MatchmakingHandler handles HTTP requests for matchmaking operations
type MatchmakingHandler struct {
	matchmakingUC matchmaking.MatchmakingUC
	cfg           *models.Config
}

// NewMatchmakingHandler creates a new matchmaking HTTP handler
func NewMatchmakingHandler(matchmakingUC matchmaking.MatchmakingUC, cfg *models.Config) *MatchmakingHandler {
	return &MatchmakingHandler{
		matchmakingUC: matchmakingUC,
		cfg:           cfg,
	}
}

// MatchesResponse is the body of the matches endpoint
type MatchesResponse struct {
	Request *models.MatchRequest `json:"request"`
	Matches []models.MatchResult `json:"matches"`
}

// ExpireResponse is the body of the expire endpoint
type ExpireResponse struct {
	Expired int64 `json:"expired"`
}

// CreateRequest opens a matchmaking request for the caller
func (h *MatchmakingHandler) CreateRequest(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.CreateMatchRequest
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationError(c, err)
	}

	request, err := h.matchmakingUC.CreateRequest(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleError(c, err, "Failed to create matchmaking request")
	}

	middleware.SetMatchRequestID(c, request.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Matchmaking request created", request)
}

// ListRequests lists active requests, optionally filtered by one or more game ids
func (h *MatchmakingHandler) ListRequests(c echo.Context) error {
	var filter models.RequestFilter
	for _, raw := range c.QueryParams()["game"] {
		gameID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.ValidationErrorResponse(c, map[string]string{"game": "A valid integer is required."})
		}
		filter.GameIDs = append(filter.GameIDs, gameID)
	}
	if c.QueryParam("mine") == "true" {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			return utils.UnauthorizedResponse(c, "")
		}
		filter.UserID = &userID
	}

	requests, err := h.matchmakingUC.ListActiveRequests(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err, "Failed to list matchmaking requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// GetRequest returns one request owned by the caller, or any request for admins
func (h *MatchmakingHandler) GetRequest(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, "")
	}
	middleware.SetMatchRequestID(c, id)

	request, err := h.matchmakingUC.GetRequest(c.Request().Context(), actor, id)
	if err != nil {
		return h.handleError(c, err, "Failed to retrieve matchmaking request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", request)
}

// UpdateRequest partially updates a request. Status is not writable.
func (h *MatchmakingHandler) UpdateRequest(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, "")
	}
	middleware.SetMatchRequestID(c, id)

	var input models.UpdateMatchRequest
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&input); err != nil {
		return validationError(c, err)
	}

	request, err := h.matchmakingUC.UpdateRequest(c.Request().Context(), actor, id, input)
	if err != nil {
		return h.handleError(c, err, "Failed to update matchmaking request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Matchmaking request updated", request)
}

// GetMatches returns the ranked matches for the caller's current active request
func (h *MatchmakingHandler) GetMatches(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	request, matches, err := h.matchmakingUC.GetMatchesForUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err, "Failed to find matches")
	}

	middleware.SetMatchRequestID(c, request.ID)
	middleware.AddAttribute(c, "matchmaking.match_count", len(matches))

	return utils.SuccessResponse(c, http.StatusOK, "", MatchesResponse{
		Request: request,
		Matches: matches,
	})
}

// Nearby lists active requests around a point, excluding the caller's own
func (h *MatchmakingHandler) Nearby(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	fields := map[string]string{}
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		fields["lat"] = "Ensure this value is between -90 and 90."
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		fields["lon"] = "Ensure this value is between -180 and 180."
	}

	radiusKm := float64(h.defaultRadiusKm())
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			fields["radius_km"] = "Ensure this value is greater than 0."
		}
	}

	query := models.NearbyQuery{
		Latitude:      lat,
		Longitude:     lon,
		RadiusKm:      radiusKm,
		ExcludeUserID: &userID,
	}
	if raw := c.QueryParam("game"); raw != "" {
		gameID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fields["game"] = "A valid integer is required."
		}
		query.GameID = &gameID
	}

	if len(fields) > 0 {
		return utils.ValidationErrorResponse(c, fields)
	}

	requests, err := h.matchmakingUC.NearbyRequests(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err, "Failed to find nearby requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// ExpireRequests runs the expiry sweep on demand
func (h *MatchmakingHandler) ExpireRequests(c echo.Context) error {
	expired, err := h.matchmakingUC.ExpireStale(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, "Failed to expire matchmaking requests")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", ExpireResponse{Expired: expired})
}

func (h *MatchmakingHandler) defaultRadiusKm() int {
	if h.cfg != nil && h.cfg.Matchmaking.DefaultRadiusKm > 0 {
		return h.cfg.Matchmaking.DefaultRadiusKm
	}
	return fallbackNearbyRadiusKm
}

func (h *MatchmakingHandler) handleError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, matchmaking.ErrRequestNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, matchmaking.ErrNoActiveRequest):
		return utils.NotFoundResponse(c, "You do not have an active matchmaking request.")
	case errors.Is(err, matchmaking.ErrForbidden):
		return utils.ForbiddenResponse(c, "")
	case errors.Is(err, matchmaking.ErrActiveRequestExists):
		return utils.ConflictResponse(c, "You already have an active matchmaking request for this game.")
	case errors.Is(err, matchmaking.ErrRequestExpired):
		return utils.BadRequestResponse(c, "This matchmaking request has expired.")
	case errors.Is(err, matchmaking.ErrTerminalStatus):
		return utils.ConflictResponse(c, "This matchmaking request can no longer be modified.")
	case errors.Is(err, matchmaking.ErrInvalidRequest):
		return utils.BadRequestResponse(c, err.Error())
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), fallback,
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}

func validationError(c echo.Context, err error) error {
	if fields := validator.FieldErrors(err); fields != nil {
		return utils.ValidationErrorResponse(c, fields)
	}
	return utils.BadRequestResponse(c, err.Error())
}

func actorFromContext(c echo.Context) (models.Actor, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(c)}, true
}
