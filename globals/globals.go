package globals

import "context"

// Context keys
type ContextKey string

const (
	UserIDKey ContextKey = "userId"
	EmailKey  ContextKey = "email"
	RoleKey   ContextKey = "role"
)

// JwtSecret is set from configuration during startup, before any route is
// served.
var JwtSecret []byte

var Ctx = context.Background()
