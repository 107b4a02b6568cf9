package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postboard-backend/pkg/jwt"
)

// SessionCookie carries the access token for browser clients.
const SessionCookie = "pb_session"

// LoginPath is where unauthenticated browser-flow requests are sent.
const LoginPath = "/api/v1/auth/login"

// tokenFromRequest looks for credentials in the Authorization header
// first, then in the session cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}

func authenticate(c *gin.Context, manager *jwt.Manager) (uuid.UUID, bool) {
	token := tokenFromRequest(c)
	if token == "" {
		return uuid.Nil, false
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	c.Set("userID", userID)
	c.Set("username", claims.Username)
	return userID, true
}

// RequireAuth rejects unauthenticated requests with 401.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, manager); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLogin redirects unauthenticated requests to the login endpoint
// with a next parameter pointing back at the original URL.
func RequireLogin(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, manager); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the viewer identity when credentials are present
// but never blocks the request.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, manager)
		c.Next()
	}
}

// UserID returns the authenticated user id from the context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
