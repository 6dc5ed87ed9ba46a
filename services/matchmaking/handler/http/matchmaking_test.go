package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/validator"
	"github.com/AxelRadin/LudoKan-sub000/internal/utils"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerDeps struct {
	e       *echo.Echo
	uc      *mocks.MockMatchmakingUC
	handler *MatchmakingHandler
}

func setupHandler(t *testing.T) handlerDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	e := echo.New()
	e.Validator = validator.NewEchoValidator()

	uc := mocks.NewMockMatchmakingUC(ctrl)
	return handlerDeps{
		e:       e,
		uc:      uc,
		handler: NewMatchmakingHandler(uc, &models.Config{}),
	}
}

func newContext(e *echo.Echo, method, target, body string, userID *uuid.UUID, role string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(constants.ContextKeyUserID, *userID)
		c.Set(constants.ContextKeyUserRole, role)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateRequest_Success(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	body := `{"game_id": 7, "latitude": 48.8566, "longitude": 2.3522, "radius_km": 15}`
	c, rec := newContext(d.e, http.MethodPost, "/api/matchmaking/requests", body, &userID, constants.RoleUser)

	d.uc.EXPECT().
		CreateRequest(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, input models.CreateMatchRequest) (*models.MatchRequest, error) {
			assert.Equal(t, int64(7), input.GameID)
			require.NotNil(t, input.RadiusKm)
			assert.Equal(t, 15, *input.RadiusKm)
			return &models.MatchRequest{ID: 1, UserID: userID, GameID: 7, RadiusKm: 15}, nil
		})

	// Act
	err := d.handler.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	body := `{"game_id": 0, "latitude": 95, "radius_km": -1}`
	c, rec := newContext(d.e, http.MethodPost, "/api/matchmaking/requests", body, &userID, constants.RoleUser)

	// Act
	err := d.handler.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Contains(t, resp.Fields, "game_id")
	assert.Contains(t, resp.Fields, "latitude")
	assert.Contains(t, resp.Fields, "longitude")
	assert.Contains(t, resp.Fields, "radius_km")
}

func TestCreateRequest_Duplicate(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	body := `{"game_id": 7, "latitude": 48.8566, "longitude": 2.3522}`
	c, rec := newContext(d.e, http.MethodPost, "/api/matchmaking/requests", body, &userID, constants.RoleUser)

	d.uc.EXPECT().CreateRequest(gomock.Any(), userID, gomock.Any()).Return(nil, matchmaking.ErrActiveRequestExists)

	// Act
	err := d.handler.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You already have an active matchmaking request for this game.", decodeError(t, rec).Error)
}

func TestCreateRequest_Unauthenticated(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	c, rec := newContext(d.e, http.MethodPost, "/api/matchmaking/requests", `{}`, nil, "")

	// Act
	err := d.handler.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListRequests_ParsesGameFilter(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/requests?game=7&game=9", "", &userID, constants.RoleUser)

	d.uc.EXPECT().
		ListActiveRequests(gomock.Any(), models.RequestFilter{GameIDs: []int64{7, 9}}).
		Return([]*models.MatchRequest{{ID: 1}}, nil)

	// Act
	err := d.handler.ListRequests(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRequests_MineFiltersByCaller(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/requests?mine=true", "", &userID, constants.RoleUser)

	d.uc.EXPECT().
		ListActiveRequests(gomock.Any(), models.RequestFilter{UserID: &userID}).
		Return([]*models.MatchRequest{}, nil)

	// Act
	err := d.handler.ListRequests(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRequests_InvalidGame(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/requests?game=abc", "", nil, "")

	// Act
	err := d.handler.ListRequests(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRequest_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: matchmaking.ErrRequestNotFound, wantStatus: http.StatusNotFound},
		{name: "forbidden", err: matchmaking.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "store failure", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			d := setupHandler(t)
			userID := uuid.New()
			c, rec := newContext(d.e, http.MethodGet, "/", "", &userID, constants.RoleUser)
			c.SetParamNames("id")
			c.SetParamValues("5")

			d.uc.EXPECT().
				GetRequest(gomock.Any(), models.Actor{UserID: userID}, int64(5)).
				Return(nil, tt.err)

			// Act
			err := d.handler.GetRequest(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetRequest_AdminActor(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	adminID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/", "", &adminID, constants.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues("5")

	d.uc.EXPECT().
		GetRequest(gomock.Any(), models.Actor{UserID: adminID, IsAdmin: true}, int64(5)).
		Return(&models.MatchRequest{ID: 5}, nil)

	// Act
	err := d.handler.GetRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRequest_InvalidID(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/", "", &userID, constants.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	// Act
	err := d.handler.GetRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateRequest_Expired(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodPatch, "/", `{"radius_km": 20, "status": "matched"}`, &userID, constants.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("5")

	d.uc.EXPECT().
		UpdateRequest(gomock.Any(), models.Actor{UserID: userID}, int64(5), gomock.Any()).
		Return(nil, matchmaking.ErrRequestExpired)

	// Act
	err := d.handler.UpdateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "This matchmaking request has expired.", decodeError(t, rec).Error)
}

func TestUpdateRequest_Success(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	body := `{"radius_km": 20, "expires_at": "2030-01-01T00:00:00Z"}`
	c, rec := newContext(d.e, http.MethodPatch, "/", body, &userID, constants.RoleUser)
	c.SetParamNames("id")
	c.SetParamValues("5")

	d.uc.EXPECT().
		UpdateRequest(gomock.Any(), models.Actor{UserID: userID}, int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, _ int64, input models.UpdateMatchRequest) (*models.MatchRequest, error) {
			require.NotNil(t, input.RadiusKm)
			require.NotNil(t, input.ExpiresAt)
			assert.Equal(t, 20, *input.RadiusKm)
			assert.True(t, expiresAt.Equal(*input.ExpiresAt))
			assert.Nil(t, input.GameID)
			return &models.MatchRequest{ID: 5, RadiusKm: 20}, nil
		})

	// Act
	err := d.handler.UpdateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMatches_Success(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/matches", "", &userID, constants.RoleUser)

	request := &models.MatchRequest{ID: 1, UserID: userID}
	matches := []models.MatchResult{
		{Request: &models.MatchRequest{ID: 2}, DistanceKm: 4.2},
		{Request: &models.MatchRequest{ID: 3}, DistanceKm: 343.5},
	}
	d.uc.EXPECT().GetMatchesForUser(gomock.Any(), userID).Return(request, matches, nil)

	// Act
	err := d.handler.GetMatches(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data MatchesResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Matches, 2)
	assert.Equal(t, int64(2), resp.Data.Matches[0].Request.ID)
	assert.InDelta(t, 4.2, resp.Data.Matches[0].DistanceKm, 1e-9)
}

func TestGetMatches_NoActiveRequest(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/matches", "", &userID, constants.RoleUser)

	d.uc.EXPECT().GetMatchesForUser(gomock.Any(), userID).Return(nil, nil, matchmaking.ErrNoActiveRequest)

	// Act
	err := d.handler.GetMatches(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearby_BuildsQuery(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/nearby?lat=48.85&lon=2.35&radius_km=25&game=7", "", &userID, constants.RoleUser)

	d.uc.EXPECT().
		NearbyRequests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query models.NearbyQuery) ([]*models.MatchRequest, error) {
			assert.Equal(t, 48.85, query.Latitude)
			assert.Equal(t, 2.35, query.Longitude)
			assert.Equal(t, 25.0, query.RadiusKm)
			require.NotNil(t, query.GameID)
			assert.Equal(t, int64(7), *query.GameID)
			require.NotNil(t, query.ExcludeUserID)
			assert.Equal(t, userID, *query.ExcludeUserID)
			assert.Nil(t, query.Candidates)
			return []*models.MatchRequest{}, nil
		})

	// Act
	err := d.handler.Nearby(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNearby_DefaultRadius(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/nearby?lat=0&lon=0", "", &userID, constants.RoleUser)

	d.uc.EXPECT().
		NearbyRequests(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query models.NearbyQuery) ([]*models.MatchRequest, error) {
			assert.Equal(t, float64(fallbackNearbyRadiusKm), query.RadiusKm)
			assert.Nil(t, query.GameID)
			return nil, nil
		})

	// Act
	err := d.handler.Nearby(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNearby_InvalidParams(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	userID := uuid.New()
	c, rec := newContext(d.e, http.MethodGet, "/api/matchmaking/nearby?lat=100&radius_km=0", "", &userID, constants.RoleUser)

	// Act
	err := d.handler.Nearby(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Contains(t, resp.Fields, "lat")
	assert.Contains(t, resp.Fields, "lon")
	assert.Contains(t, resp.Fields, "radius_km")
}

func TestExpireRequests(t *testing.T) {
	// Arrange
	d := setupHandler(t)
	adminID := uuid.New()
	c, rec := newContext(d.e, http.MethodPost, "/api/matchmaking/requests/expire", "", &adminID, constants.RoleAdmin)

	d.uc.EXPECT().ExpireStale(gomock.Any()).Return(int64(3), nil)

	// Act
	err := d.handler.ExpireRequests(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data ExpireResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.Expired)
}
