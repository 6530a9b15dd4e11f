// Package respond is the transport-encoding boundary between Gin and the
// result engine. Every response the API emits, success or failure, goes
// through Write so clients always receive a result.Envelope whose HTTP status
// agrees with the outcome variant.
//
// The package also owns the request-scoped values the boundary needs: the
// trace id stamped into every envelope, the zerolog logger used for 5xx
// reporting, and the status mapper (which decides between 401 and 403 for
// authorization failures).
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-api-envelope/result"
)

// Gin context keys shared with the middleware package.
const (
	TraceIDKey    = "traceID"
	TraceIDHeader = "X-Request-ID"
	LoggerKey     = "logger"
	UserIDKey     = "userID"

	mapperKey = "statusMapper"
)

// Content types used for envelopes.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// CodeInvalidOutcome is written when code at this boundary asks for an
// outcome the engine refuses to build (wrong prefix, unsupported code type,
// empty field errors). It is always a server-side defect.
const CodeInvalidOutcome = "S002"

var outcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_outcomes_total",
		Help: "Outcomes written to clients by envelope status and code.",
	},
	[]string{"status", "code"},
)

func init() {
	prometheus.MustRegister(outcomes)
}

// TraceID returns the correlation id for this request, or "" when RequestID
// middleware did not run.
func TraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// LoggerFrom returns the request-scoped logger, or a copy of the global one.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// WithMapper installs m for the rest of the chain.
func WithMapper(m result.StatusMapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(mapperKey, m)
		c.Next()
	}
}

// MapperFrom returns the mapper installed by WithMapper, or
// result.DefaultMapper.
func MapperFrom(c *gin.Context) result.StatusMapper {
	if v, ok := c.Get(mapperKey); ok {
		if m, ok := v.(result.StatusMapper); ok {
			return m
		}
	}
	return result.DefaultMapper
}

// Write encodes o as the response body with its mapped status. Failures abort
// the remaining handlers.
//
// An outcome the mapper cannot represent (the zero Outcome, a protocol
// outcome without a transport status) is logged and replaced by a server
// outcome, so the envelope never disagrees with the status line.
func Write(c *gin.Context, o result.Outcome) {
	status, err := MapperFrom(c).Status(o)
	if err != nil {
		LoggerFrom(c).Error().Err(err).Str("outcome", o.String()).Msg("unrepresentable outcome")
		o = invalidOutcome(c)
		status = http.StatusInternalServerError
	}

	d, _ := o.Detail()
	outcomes.WithLabelValues(o.Kind().Label(), d.Code).Inc()

	if status >= http.StatusInternalServerError {
		LoggerFrom(c).Error().
			Int("status", status).
			Str("code", d.Code).
			Str("error_message", d.Message).
			Msg("api error")
	}

	body := result.Encode(o)
	if status >= http.StatusBadRequest {
		c.Header("Content-Type", ContentTypeProblem)
		c.AbortWithStatusJSON(status, body)
		return
	}
	c.Header("Content-Type", ContentTypeJSON)
	c.JSON(status, body)
}

// OK writes a success envelope carrying data.
func OK(c *gin.Context, data any) {
	Write(c, result.Success(data, TraceID(c)))
}

// Business writes a business-rule failure. code must start with "B".
func Business(c *gin.Context, code any, msg string) {
	o, err := result.Business(code, msg, TraceID(c))
	write(c, o, err)
}

// Authorization writes an authorization failure. code must start with "A".
func Authorization(c *gin.Context, code any, msg string) {
	o, err := result.Authorization(code, msg, TraceID(c))
	write(c, o, err)
}

// Server writes an unexpected server failure. code must start with "S".
func Server(c *gin.Context, code any, msg string) {
	o, err := result.Server(code, msg, TraceID(c))
	write(c, o, err)
}

// Validation writes a validation failure with an explicit code.
func Validation(c *gin.Context, code any, msg string) {
	o, err := result.Validation(code, msg, TraceID(c))
	write(c, o, err)
}

// ValidationFields writes a validation failure derived from field errors.
func ValidationFields(c *gin.Context, fields result.FieldErrors) {
	o, err := result.ValidationFromFields(fields, TraceID(c))
	write(c, o, err)
}

// Protocol wraps a raw transport status (P<status>).
func Protocol(c *gin.Context, status int) {
	Write(c, result.ProtocolFromStatus(status, TraceID(c)))
}

func write(c *gin.Context, o result.Outcome, err error) {
	if err != nil {
		LoggerFrom(c).Error().Err(err).Msg("invalid outcome requested")
		Write(c, invalidOutcome(c))
		return
	}
	Write(c, o)
}

func invalidOutcome(c *gin.Context) result.Outcome {
	return result.Must(result.Server(CodeInvalidOutcome, "invalid outcome", TraceID(c)))
}
