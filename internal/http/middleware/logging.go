// Package middleware holds the request pipeline that surrounds the API
// handlers. Each piece either stamps request-scoped state (trace id, logger,
// identity) or converts a condition the handlers never see (a panic, an
// unmatched route, an exhausted rate limit) into a result.Outcome written
// through respond.Write.
//
// Recommended order:
//
//	RequestID → Logger → ProtocolFallback → Recovery → everything else
//
// so that every envelope carries the trace id and every failure is logged.
package middleware

import (
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/result"
)

const (
	// CodeUnhandled is the server code for recovered panics.
	CodeUnhandled = "S001"

	maxQueryLogLength = 2048
)

// RequestID resolves the trace id stamped into every envelope.
//
// An incoming X-Request-ID wins; otherwise the id of the active OpenTelemetry
// span is used, and a UUIDv4 is generated as a last resort. The id is echoed
// in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(respond.TraceIDHeader)
		if rid == "" {
			if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
				rid = sc.TraceID().String()
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(respond.TraceIDKey, rid)
		c.Writer.Header().Set(respond.TraceIDHeader, rid)
		c.Next()
	}
}

// Logger writes one access log line per request and stores a request-scoped
// logger carrying trace_id for handlers and respond.Write.
//
// Level follows the status: error for 5xx or when gin collected errors, warn
// for 4xx, info otherwise.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("trace_id", respond.TraceID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", truncate(c.Request.URL.RawQuery, maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()
		c.Set(respond.LoggerKey, &l)

		c.Next()

		ev := l.With().
			Str("user_id", c.GetString(respond.UserIDKey)).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			ev.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			ev.Error().Msg("request")
		case status >= 400:
			ev.Warn().Msg("request")
		default:
			ev.Info().Msg("request")
		}
	}
}

// Recovery turns a panic into a server outcome (S001 "unhandled exception").
// If the handler had already started the response, the connection is only
// aborted with 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			respond.LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Write(c, result.Must(result.Server(CodeUnhandled, "unhandled exception", respond.TraceID(c))))
		}()
		c.Next()
	}
}

// truncate caps s at max bytes and appends an ellipsis. max <= 0 disables it.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
