package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request id is stored under.
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id for log correlation.
// An id supplied upstream (load balancer, proxy) is kept as-is; otherwise
// a fresh UUID is issued. The id is echoed back on the response so clients
// can quote it when reporting a failure.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}
