package constants

type contextKey string

// TokenKey carries the caller's bearer token on a context.Context so that
// outbound calls to the main service can forward it.
const TokenKey contextKey = "token"

// Gin context keys set by middleware.Secured().
const (
	Token  = "token"
	UserID = "user_id"
)
