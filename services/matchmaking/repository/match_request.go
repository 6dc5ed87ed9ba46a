package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/database"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	nrpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/newrelic"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	requestsTable  = "matchmaking_requests"
	requestColumns = `id, user_id, game_id, latitude, longitude, geohash, radius_km, status, expires_at, created_at`
)

// MatchRequestRepo implements the matchmaking request repository interface
type MatchRequestRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchRequestRepository creates a new matchmaking request repository
func NewMatchRequestRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MatchRequestRepo {
	return &MatchRequestRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// CreateRequest inserts a new request and fills in its id and creation time
func (r *MatchRequestRepo) CreateRequest(ctx context.Context, req *models.MatchRequest) (*models.MatchRequest, error) {
	if req.Status == "" {
		req.Status = models.MatchRequestStatusPending
	}

	query := `
		INSERT INTO matchmaking_requests (
			user_id, game_id, latitude, longitude, geohash, radius_km, status, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		req.UserID, req.GameID, req.Latitude, req.Longitude, req.Geohash,
		req.RadiusKm, req.Status, req.ExpiresAt,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert matchmaking request: %w", err)
	}

	return req, nil
}

// GetRequest retrieves a request by id
func (r *MatchRequestRepo) GetRequest(ctx context.Context, id int64) (*models.MatchRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM matchmaking_requests WHERE id = $1`

	var req models.MatchRequest
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matchmaking.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get matchmaking request: %w", err)
	}

	return &req, nil
}

// UpdateRequest persists the mutable fields of a request. Status is not written here.
func (r *MatchRequestRepo) UpdateRequest(ctx context.Context, req *models.MatchRequest) error {
	query := `
		UPDATE matchmaking_requests
		SET game_id = $1, latitude = $2, longitude = $3, geohash = $4, radius_km = $5, expires_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		req.GameID, req.Latitude, req.Longitude, req.Geohash, req.RadiusKm, req.ExpiresAt, req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update matchmaking request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return matchmaking.ErrRequestNotFound
	}

	return nil
}

// MarkExpired moves a pending request to expired. Returns false when the
// request was not pending.
func (r *MatchRequestRepo) MarkExpired(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE matchmaking_requests SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query,
		models.MatchRequestStatusExpired, id, models.MatchRequestStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to expire matchmaking request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// DeleteRequestsByUser removes every request owned by the user
func (r *MatchRequestRepo) DeleteRequestsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matchmaking_requests WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matchmaking requests: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// ListActiveRequests returns active requests, newest first
func (r *MatchRequestRepo) ListActiveRequests(ctx context.Context, filter models.RequestFilter, now time.Time) ([]*models.MatchRequest, error) {
	conditions := []string{"status = $1", "expires_at > $2"}
	args := []interface{}{models.MatchRequestStatusPending, now}

	if len(filter.GameIDs) > 0 {
		args = append(args, pq.Array(filter.GameIDs))
		conditions = append(conditions, fmt.Sprintf("game_id = ANY($%d)", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := `SELECT ` + requestColumns + ` FROM matchmaking_requests WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC, id DESC`

	requests := []*models.MatchRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list active matchmaking requests: %w", err)
	}

	return requests, nil
}

// FindActiveWithinBBox returns the active requests whose location falls inside
// the bounding box. Latitudes are clamped to the valid range and a longitude
// span crossing the antimeridian is queried as two ranges.
func (r *MatchRequestRepo) FindActiveWithinBBox(ctx context.Context, bbox models.BoundingBox, now time.Time) ([]*models.MatchRequest, error) {
	latMin, latMax := bbox.ClampedLatitudes()

	conditions := []string{"status = $1", "expires_at > $2", "latitude BETWEEN $3 AND $4"}
	args := []interface{}{models.MatchRequestStatusPending, now, latMin, latMax}

	var lonConditions []string
	for _, lr := range bbox.LongitudeRanges() {
		args = append(args, lr.Min, lr.Max)
		lonConditions = append(lonConditions, fmt.Sprintf("longitude BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}
	switch len(lonConditions) {
	case 0:
	case 1:
		conditions = append(conditions, lonConditions[0])
	default:
		conditions = append(conditions, "("+strings.Join(lonConditions, " OR ")+")")
	}

	query := `SELECT ` + requestColumns + ` FROM matchmaking_requests WHERE ` + strings.Join(conditions, " AND ")

	requests := []*models.MatchRequest{}
	err := nrpkg.WithDatastoreSegment(ctx, requestsTable, "select", func() error {
		return r.db.SelectContext(ctx, &requests, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find matchmaking requests in bounding box: %w", err)
	}

	return requests, nil
}

// GetActiveRequestByUser returns the user's most recent active request
func (r *MatchRequestRepo) GetActiveRequestByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*models.MatchRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM matchmaking_requests
		WHERE user_id = $1 AND status = $2 AND expires_at > $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var req models.MatchRequest
	if err := r.db.GetContext(ctx, &req, query, userID, models.MatchRequestStatusPending, now); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, matchmaking.ErrNoActiveRequest
		}
		return nil, fmt.Errorf("failed to get active matchmaking request: %w", err)
	}

	return &req, nil
}

// HasActiveRequest reports whether the user already has an active request for the game
func (r *MatchRequestRepo) HasActiveRequest(ctx context.Context, userID uuid.UUID, gameID int64, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM matchmaking_requests
			WHERE user_id = $1 AND game_id = $2 AND status = $3 AND expires_at > $4
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, gameID, models.MatchRequestStatusPending, now); err != nil {
		return false, fmt.Errorf("failed to check active matchmaking request: %w", err)
	}

	return exists, nil
}

// ExpireStale moves every pending request with expires_at <= now to expired
// and returns the affected ids. Rows that are not pending are never touched,
// so running it twice with the same now changes nothing the second time.
func (r *MatchRequestRepo) ExpireStale(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		UPDATE matchmaking_requests
		SET status = $1
		WHERE status = $2 AND expires_at <= $3
		RETURNING id
	`

	ids := []int64{}
	err := nrpkg.WithDatastoreSegment(ctx, requestsTable, "update", func() error {
		return r.db.SelectContext(ctx, &ids, query,
			models.MatchRequestStatusExpired, models.MatchRequestStatusPending, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to expire stale matchmaking requests: %w", err)
	}

	return ids, nil
}
