package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-api-envelope/internal/http/respond"
)

// HeaderUserID carries the caller identity. Real deployments put an
// authenticating proxy in front of the service that sets it.
const HeaderUserID = "X-User-ID"

// CodeMissingIdentity is written when a protected route is called without an
// identity.
const CodeMissingIdentity = "A001"

const maxUserIDLen = 128

// Authenticate requires X-User-ID and stores it under respond.UserIDKey.
// Missing, blank, or oversized identities produce an authorization outcome
// (A001).
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if uid == "" || len(uid) > maxUserIDLen {
			respond.Authorization(c, CodeMissingIdentity, "missing or invalid identity")
			return
		}
		c.Set(respond.UserIDKey, uid)
		c.Next()
	}
}

// UserID returns the identity stored by Authenticate.
func UserID(c *gin.Context) (string, bool) {
	uid := c.GetString(respond.UserIDKey)
	return uid, uid != ""
}
