// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// idempotency, and rate limiting, and makes sure every response leaves as a
// result envelope.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-api-envelope/docs"
	"github.com/tbourn/go-api-envelope/internal/config"
	"github.com/tbourn/go-api-envelope/internal/http/handlers"
	"github.com/tbourn/go-api-envelope/internal/http/middleware"
	"github.com/tbourn/go-api-envelope/internal/http/respond"
	"github.com/tbourn/go-api-envelope/internal/services"
	"github.com/tbourn/go-api-envelope/result"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the wallet API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: correlation id, reused as the envelope trace id
//  3. Logger: access log and request-scoped logger
//  4. Optional gzip, outside the fallback so late writes are compressed too
//  5. ProtocolFallback: bare statuses (404, 405, ...) become P<status>
//  6. Recovery: panics become S001, inside the fallback so it sees the write
//  7. Status mapper (AUTHZ_STATUS)
//  8. Body size limiter
//  9. Metrics, CORS
//
// The API group adds Authenticate, the idempotency validator (before the
// rate limiter so replays bypass it), and the rate limiter.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// 405 instead of 404 for known paths; ProtocolFallback renders both.
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}
	r.Use(middleware.ProtocolFallback())
	r.Use(middleware.Recovery())
	r.Use(respond.WithMapper(result.StatusMapper{AuthorizationStatus: cfg.AuthzStatus}))
	r.Use(limitBody(cfg.MaxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	useCORS(r, cfg.CORS.AllowedOrigins)

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/health", func(c *gin.Context) { respond.OK(c, gin.H{"status": "ok"}) })

	accountSvc := services.NewAccountService(db)
	transferSvc := services.NewTransferService(db, cfg.IdempotencyTTL)
	h := handlers.New(accountSvc, transferSvc)

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())

	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(
		middleware.Authenticate(),
		middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, transferSvc.Lookup),
		rl.Handler(),
	)
	{
		api.POST("/accounts", h.CreateAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:id", h.GetAccount)
		api.POST("/accounts/:id/deposits", h.Deposit)

		api.POST("/transfers", h.CreateTransfer)
	}
}

// useCORS installs the CORS posture: allow all when no origins are
// configured, otherwise echo allowlisted origins.
func useCORS(r *gin.Engine, origins []string) {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderUserID, middleware.HeaderIdempotencyKey},
		ExposeHeaders:    []string{respond.TraceIDHeader, "Content-Length", handlers.HeaderIdempotencyReplayed, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		// ACAO: * even without an Origin header (simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		corsCfg.AllowAllOrigins = true
		r.Use(cors.New(corsCfg))
		return
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
		}
		c.Next()
	})
	corsCfg.AllowOrigins = origins
	r.Use(cors.New(corsCfg))
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
// Handlers report an oversized body as P413. maxBytes <= 0 disables the cap.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
