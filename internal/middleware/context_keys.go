package middleware

import "github.com/gin-gonic/gin"

// requestIDKey is the key used to store the request ID in the request context.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID assigned by StructuredLoggingMiddleware.
// It returns the ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestID, ok := c.Request.Context().Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}
