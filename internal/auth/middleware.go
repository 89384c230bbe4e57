package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"property-listings-api/internal/models"
)

// userKey is the gin context key the authenticated user is stored under.
const userKey = "current_user"

// Middleware validates bearer tokens and loads the authenticated user.
type Middleware struct {
	store  UserStore
	tokens *TokenManager
}

// NewMiddleware creates the auth middleware.
func NewMiddleware(store UserStore, tokens *TokenManager) *Middleware {
	return &Middleware{store: store, tokens: tokens}
}

// RequireAuth rejects requests without a valid bearer token and puts the
// loaded user into the request context.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// Load the account so disabled users lose access immediately, not at
		// token expiry.
		user, err := m.store.GetUserByID(claims.UserID)
		if err != nil || !user.Enabled {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account not available"})
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin allows only admin accounts through. Must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user from the request context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
