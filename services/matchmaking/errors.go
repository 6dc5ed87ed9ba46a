package matchmaking

import "errors"

var (
	ErrRequestNotFound     = errors.New("matchmaking request not found")
	ErrNoActiveRequest     = errors.New("no active matchmaking request")
	ErrActiveRequestExists = errors.New("active matchmaking request already exists for this game")
	ErrRequestExpired      = errors.New("matchmaking request has expired")
	ErrTerminalStatus      = errors.New("matchmaking request is in a terminal status")
	ErrForbidden           = errors.New("not allowed to access this matchmaking request")
	ErrInvalidRequest      = errors.New("invalid matchmaking request")
)
