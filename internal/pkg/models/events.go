package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestCreatedEvent is published when a user opens a matchmaking request
type RequestCreatedEvent struct {
	RequestID int64     `json:"request_id"`
	UserID    uuid.UUID `json:"user_id"`
	GameID    int64     `json:"game_id"`
	Geohash   string    `json:"geohash"`
	RadiusKm  int       `json:"radius_km"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RequestsExpiredEvent is published after a sweep moved requests to expired
type RequestsExpiredEvent struct {
	RequestIDs []int64   `json:"request_ids"`
	Count      int64     `json:"count"`
	ExpiredAt  time.Time `json:"expired_at"`
}

// MatchCandidate is one ranked entry of a match found event
type MatchCandidate struct {
	RequestID  int64     `json:"request_id"`
	UserID     uuid.UUID `json:"user_id"`
	DistanceKm float64   `json:"distance_km"`
}

// MatchFoundEvent announces the ranked candidates found for a request
type MatchFoundEvent struct {
	RequestID  int64            `json:"request_id"`
	UserID     uuid.UUID        `json:"user_id"`
	GameID     int64            `json:"game_id"`
	Candidates []MatchCandidate `json:"candidates"`
	FoundAt    time.Time        `json:"found_at"`
}

// UserDeletedEvent is consumed from the accounts service
type UserDeletedEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}
