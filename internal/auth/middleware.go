package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mojocode_server/internal/types"
)

const userKey = "auth_user"

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user on the gin context.
func RequireAuth(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}

		user, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			log.Printf("WARN: rejected token for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// UserFrom returns the user stored by RequireAuth.
func UserFrom(c *gin.Context) (types.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return types.User{}, false
	}
	u, ok := v.(types.User)
	return u, ok
}

// SetUser stores user on the context the way RequireAuth does.
func SetUser(c *gin.Context, user types.User) {
	c.Set(userKey, user)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
