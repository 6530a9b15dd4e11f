package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-api-envelope/internal/http/respond"
)

// ProtocolFallback wraps transport statuses that no handler turned into an
// envelope. After the chain returns, if nothing has been written and the
// status is outside the handled set of the request's mapper (200, 400, the
// authorization status, 500), a protocol outcome P<status> is written with
// the status description as message.
//
// Registered globally it also covers unmatched routes (404) and, with
// HandleMethodNotAllowed, wrong methods (405): gin runs global middleware for
// those and skips its plain-text body once a response has been written.
func ProtocolFallback() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		status := c.Writer.Status()
		if respond.MapperFrom(c).IsHandledStatus(status) {
			return
		}
		respond.Protocol(c, status)
	}
}
