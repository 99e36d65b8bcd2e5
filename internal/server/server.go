package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/CraftPlanner_Go/docs"

	"github.com/osse101/CraftPlanner_Go/internal/crafting"
	"github.com/osse101/CraftPlanner_Go/internal/handler"
	"github.com/osse101/CraftPlanner_Go/internal/logger"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
	"github.com/osse101/CraftPlanner_Go/internal/profile"
	"github.com/osse101/CraftPlanner_Go/internal/sales"
)

// Options configures the HTTP layer
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	// RequestsPerSecond and Burst bound each client; zero disables limiting
	RequestsPerSecond float64
	Burst             int
}

// Services are the application components exposed over HTTP
type Services struct {
	Store    profile.Store
	Crafting crafting.Service
	Sales    sales.Service
	Catalog  handler.ItemCatalog
	// Cache enables the admin cache routes when set
	Cache handler.CacheAdmin
	// Health is pinged by /readyz; nil means always ready
	Health handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewClientRateLimiter(opts.RequestsPerSecond, opts.Burst)))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Health))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	profiles := handler.NewProfileHandler(svc.Store, svc.Crafting)
	craft := handler.NewCraftingHandler(svc.Crafting)
	salesHandler := handler.NewSalesHandler(svc.Sales)
	items := handler.NewItemHandler(svc.Catalog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RequestSizeLimitMiddleware(MaxJSONBodyBytes))

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profiles.HandleList)
			r.Post("/", profiles.HandleCreate)

			r.Route("/{profile}", func(r chi.Router) {
				r.Delete("/", profiles.HandleDelete)

				r.Route("/wishlist", func(r chi.Router) {
					r.Get("/", craft.HandleGetWishlist)
					r.Post("/", craft.HandleAddItem)
					r.Delete("/", craft.HandleClearWishlist)
					r.Put("/{itemID}", craft.HandleSetQuantity)
					r.Delete("/{itemID}", craft.HandleRemoveItem)
				})

				r.Get("/owned/{ingredientID}", craft.HandleGetOwned)
				r.Put("/owned/{ingredientID}", craft.HandleSetOwned)
				r.Get("/ingredients", craft.HandleGetIngredients)

				r.Route("/sales", func(r chi.Router) {
					r.Get("/", salesHandler.HandleList)
					r.Post("/", salesHandler.HandleImport)
					r.Delete("/", salesHandler.HandleClear)
					r.Get("/summary", salesHandler.HandleSummary)
					r.Post("/images", salesHandler.HandleImportImages)
					r.Delete("/{order}", salesHandler.HandleRemove)
				})
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/search", items.HandleSearchItems)
			r.Get("/{id}", items.HandleGetItem)
		})

		r.Route("/sets", func(r chi.Router) {
			r.Get("/search", items.HandleSearchSets)
			r.Get("/{id}", items.HandleGetSet)
		})

		if svc.Cache != nil {
			adminCache := handler.NewAdminCacheHandler(svc.Cache)
			r.Route("/admin/cache", func(r chi.Router) {
				r.Get("/stats", adminCache.HandleGetCacheStats)
				r.Delete("/", adminCache.HandleClearCache)
			})
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
