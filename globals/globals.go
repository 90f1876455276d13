package globals

import (
	"context"
)

// JwtSecret signs and verifies access tokens. Set from config at startup.
var JwtSecret = []byte("dev-only-secret")

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const ClaimsKey ContextKey = "claims"

var Ctx = context.Background()
