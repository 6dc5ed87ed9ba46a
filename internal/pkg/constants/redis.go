package constants

// Redis key formats
const (
	// Matchmaking Service
	KeySweepLock     = "matchmaking:sweep:lock" // Held by the replica running the expiry sweep
	KeyActiveRequest = "matchmaking:active:%s"  // Format: matchmaking:active:{user_id}
)
