package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMatchRequestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from MatchRequestStatus
		to   MatchRequestStatus
		want bool
	}{
		{"pending to matched", MatchRequestStatusPending, MatchRequestStatusMatched, true},
		{"pending to expired", MatchRequestStatusPending, MatchRequestStatusExpired, true},
		{"pending to pending", MatchRequestStatusPending, MatchRequestStatusPending, false},
		{"matched to expired", MatchRequestStatusMatched, MatchRequestStatusExpired, false},
		{"expired to pending", MatchRequestStatusExpired, MatchRequestStatusPending, false},
		{"expired to matched", MatchRequestStatusExpired, MatchRequestStatusMatched, false},
		{"unknown to expired", MatchRequestStatus("cancelled"), MatchRequestStatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMatchRequestStatus_IsValidAndTerminal(t *testing.T) {
	assert.True(t, MatchRequestStatusPending.IsValid())
	assert.True(t, MatchRequestStatusMatched.IsValid())
	assert.True(t, MatchRequestStatusExpired.IsValid())
	assert.False(t, MatchRequestStatus("").IsValid())

	assert.False(t, MatchRequestStatusPending.IsTerminal())
	assert.True(t, MatchRequestStatusMatched.IsTerminal())
	assert.True(t, MatchRequestStatusExpired.IsTerminal())
}

func TestMatchRequest_IsExpired(t *testing.T) {
	// Arrange
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future", now.Add(time.Minute), false},
		{"exactly now", now, true},
		{"past", now.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &MatchRequest{Status: MatchRequestStatusPending, ExpiresAt: tt.expiresAt}

			// Act
			got := req.IsExpired(now)

			// Assert
			assert.Equal(t, tt.want, got)
			assert.Equal(t, MatchRequestStatusPending, req.Status)
		})
	}
}

func TestMatchRequest_IsActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&MatchRequest{Status: MatchRequestStatusPending, ExpiresAt: now.Add(time.Hour)}).IsActive(now))
	assert.False(t, (&MatchRequest{Status: MatchRequestStatusPending, ExpiresAt: now}).IsActive(now))
	assert.False(t, (&MatchRequest{Status: MatchRequestStatusMatched, ExpiresAt: now.Add(time.Hour)}).IsActive(now))
	assert.False(t, (&MatchRequest{Status: MatchRequestStatusExpired, ExpiresAt: now.Add(time.Hour)}).IsActive(now))
}

func TestActor_CanAccess(t *testing.T) {
	owner := uuid.New()
	req := &MatchRequest{UserID: owner}

	assert.True(t, Actor{UserID: owner}.CanAccess(req))
	assert.False(t, Actor{UserID: uuid.New()}.CanAccess(req))
	assert.True(t, Actor{UserID: uuid.New(), IsAdmin: true}.CanAccess(req))
}
