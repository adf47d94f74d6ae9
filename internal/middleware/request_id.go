package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-planner/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an ID, reusing the caller's X-Request-ID
// when present. The ID is echoed back and attached to the request context so
// log lines carry it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
