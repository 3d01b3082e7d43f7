package constants

// Keys under which the auth middleware stores the authenticated identity
// on the request context.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "user_role"
)
