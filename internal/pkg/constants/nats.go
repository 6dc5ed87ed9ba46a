package constants

// NATS Subjects
const (
	// Matchmaking service
	SubjectRequestCreated  = "matchmaking.request.created"
	SubjectRequestsExpired = "matchmaking.requests.expired"
	SubjectMatchFound      = "matchmaking.match.found"

	// Accounts
	SubjectUserDeleted = "user.deleted"
)

// Queue groups
const (
	QueueMatchmaking = "matchmaking-service"
)
