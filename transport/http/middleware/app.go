package middleware

import (
	"fmt"
	"net/http"
	"ohanna/config"
	"ohanna/infras/otel"
	"ohanna/shared/cache"
	"ohanna/shared/constant"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens a span per request. The span is named after the matched route once routing is
// done, so /v1/bookings/abc and /v1/bookings/def share one name.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		scope.SetAttributes(map[string]any{
			"app.name":         a.config.App.Name,
			"http.path":        r.URL.Path,
			"http.route":       route,
			"http.method":      r.Method,
			"http.user_agent":  r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":        r.Host,
			"http.source":      a.getClientIP(r),
			"http.status_code": ww.Status(),
		})

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("request failed with status %d", ww.Status()))
		}
	})
}

// CORS is a pass-through unless enabled in configuration.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	settings := a.config.App.CORS
	if !settings.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   settings.AllowedOrigins,
		AllowedMethods:   settings.AllowedMethods,
		AllowedHeaders:   settings.AllowedHeaders,
		AllowCredentials: settings.AllowCredentials,
		MaxAge:           settings.MaxAgeSeconds,
	})
}
