package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
