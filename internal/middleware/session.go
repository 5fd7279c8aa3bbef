// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartSessionCookie = "cart_session"
	cartSessionKey    = "cart_session_id"
)

// CartSession ensures every request carries a cart session id, issuing
// a cookie on first contact. The id only names a cart; it grants
// nothing.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cartSessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			// Session cookie: no explicit expiry, gone with the browser
			c.SetCookie(cartSessionCookie, sessionID, 0, "/", "", false, true)
		} else if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
			c.SetCookie(cartSessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Set(cartSessionKey, sessionID)
		c.Next()
	}
}

// CartSessionID reads the session id set by CartSession.
func CartSessionID(c *gin.Context) string {
	if id, exists := c.Get(cartSessionKey); exists {
		if idStr, ok := id.(string); ok {
			return idStr
		}
	}
	return ""
}
