package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebook/internal/auth"
)

// SessionAuth resolves the session cookie to a user id and stores it in
// the request context. A missing cookie, a forged token and a cleared
// session all short-circuit with 401 before any handler runs.
func SessionAuth(cookieName string, tokens *auth.TokenManager, sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sessionID, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("user_id", userID)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
