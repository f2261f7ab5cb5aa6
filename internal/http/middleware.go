package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"helprequest-service/internal/auth"
	"helprequest-service/internal/service"
)

const bearerPrefix = "Bearer "

// authenticate требует валидный bearer-токен и кладёт вызывающего в контекст.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const handlerName = "authenticate"

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			h.writeError(w, r, handlerName, service.ErrUnauthorized("missing bearer token"))
			return
		}

		principal, err := h.Authn.Authenticate(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			h.writeError(w, r, handlerName, service.ErrUnauthorized("invalid bearer token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}

// require пропускает запрос, только если вызывающему разрешено action над resource.
// Проверка идёт до обработчика, поэтому отклонённый запрос не доходит до хранилища.
func (h *Handler) require(resource, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const handlerName = "authorize"

			principal, ok := auth.PrincipalFromContext(r.Context())
			if !ok {
				h.writeError(w, r, handlerName, service.ErrUnauthorized("authentication required"))
				return
			}

			allowed, err := h.Authz.Allowed(principal, resource, action)
			if err != nil {
				h.writeError(w, r, handlerName, service.ErrInternal("authorization check failed", err))
				return
			}
			if !allowed {
				h.writeError(w, r, handlerName, service.ErrForbidden("Access is denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// logRequests пишет по строке лога на каждый завершённый запрос.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.Log.InfoContext(r.Context(), "http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
