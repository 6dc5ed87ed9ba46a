package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchRequestStatus represents the lifecycle state of a matchmaking request
type MatchRequestStatus string

const (
	MatchRequestStatusPending MatchRequestStatus = "pending"
	MatchRequestStatusMatched MatchRequestStatus = "matched"
	MatchRequestStatusExpired MatchRequestStatus = "expired"
)

// IsValid reports whether the status is one of the known states
func (s MatchRequestStatus) IsValid() bool {
	switch s {
	case MatchRequestStatusPending, MatchRequestStatusMatched, MatchRequestStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from this status
func (s MatchRequestStatus) IsTerminal() bool {
	return s == MatchRequestStatusMatched || s == MatchRequestStatusExpired
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// Only pending requests move, and only to matched or expired.
func (s MatchRequestStatus) CanTransitionTo(next MatchRequestStatus) bool {
	if s != MatchRequestStatusPending {
		return false
	}
	return next == MatchRequestStatusMatched || next == MatchRequestStatusExpired
}

// MatchRequest is a user's standing request to be matched for a game near a location
type MatchRequest struct {
	ID        int64              `json:"id" db:"id"`
	UserID    uuid.UUID          `json:"user_id" db:"user_id"`
	GameID    int64              `json:"game_id" db:"game_id"`
	Latitude  float64            `json:"latitude" db:"latitude"`
	Longitude float64            `json:"longitude" db:"longitude"`
	Geohash   string             `json:"geohash" db:"geohash"`
	RadiusKm  int                `json:"radius_km" db:"radius_km"`
	Status    MatchRequestStatus `json:"status" db:"status"`
	ExpiresAt time.Time          `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the request's expiry has passed at now.
// It never mutates the request.
func (r *MatchRequest) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// IsActive reports whether the request is pending and not yet expired at now
func (r *MatchRequest) IsActive(now time.Time) bool {
	return r.Status == MatchRequestStatusPending && r.ExpiresAt.After(now)
}

// Location returns the request's position
func (r *MatchRequest) Location() Location {
	return Location{Latitude: r.Latitude, Longitude: r.Longitude}
}

// MatchResult pairs a candidate request with its distance to the querying request
type MatchResult struct {
	Request    *MatchRequest `json:"request"`
	DistanceKm float64       `json:"distance_km"`
}

// NearbyQuery describes a proximity lookup around a point.
// Candidates, when non-nil, replaces the store lookup as the candidate pool.
type NearbyQuery struct {
	Latitude      float64
	Longitude     float64
	RadiusKm      float64
	GameID        *int64
	ExcludeUserID *uuid.UUID
	Candidates    []*MatchRequest
}

// RequestFilter narrows a listing of active requests
type RequestFilter struct {
	GameIDs []int64
	UserID  *uuid.UUID
}

// CreateMatchRequest is the payload for opening a new matchmaking request
type CreateMatchRequest struct {
	GameID    int64      `json:"game_id" validate:"required,gt=0"`
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	RadiusKm  *int       `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// UpdateMatchRequest is the payload for a partial update of a matchmaking request
type UpdateMatchRequest struct {
	GameID    *int64     `json:"game_id,omitempty" validate:"omitempty,gt=0"`
	Latitude  *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RadiusKm  *int       `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Actor is the authenticated caller of a request-scoped operation
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// CanAccess reports whether the actor may read or modify req
func (a Actor) CanAccess(req *MatchRequest) bool {
	return a.IsAdmin || req.UserID == a.UserID
}
