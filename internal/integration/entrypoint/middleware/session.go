// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionIDKey is the context key for the chat session ID.
	SessionIDKey ContextKey = "session_id"

	// SessionHeader carries the chat session ID in requests and responses.
	SessionHeader = "X-Session-ID"
)

// Session returns a Gin middleware handler that attaches a chat session ID
// to the request. Clients that send none get a fresh one echoed back in the
// response header so they can reuse it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionIDFromContext retrieves the chat session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(string(SessionIDKey))
	if !exists {
		return "", false
	}

	sessionID, ok := value.(string)
	return sessionID, ok && sessionID != ""
}
