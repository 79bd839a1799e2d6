package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/pkg/auth"
)

// AuthCookieName is the cookie carrying the signed access token.
const AuthCookieName = "auth_token"

const identityKey = "identity"

// Identity is the authenticated caller, resolved once per request
// instead of being re-derived from raw headers in every handler.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// IdentityResolver resolves the caller's identity from the auth cookie
// or a bearer token and stores it in the request context. Requests
// without a valid token simply proceed anonymously; role checks happen
// per route.
func IdentityResolver(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
			tokenString = cookie
		} else if header := c.GetHeader("Authorization"); header != "" {
			if extracted, err := auth.ExtractBearerToken(header); err == nil {
				tokenString = extracted
			}
		}

		if tokenString != "" {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(identityKey, Identity{
					UserID:   claims.UserID,
					Username: claims.Username,
					Role:     claims.Role,
				})
			}
		}

		c.Next()
	}
}

// IdentityFromContext returns the resolved identity, if any
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
