package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"helprequest-service/internal/auth"
	"helprequest-service/internal/model"
	"helprequest-service/internal/service"
)

// HelpRequestService описывает операции над заявками, которые нужны HTTP-слою.
type HelpRequestService interface {
	List(ctx context.Context) ([]model.HelpRequest, error)
	Get(ctx context.Context, id int64) (model.HelpRequest, error)
	Create(ctx context.Context, input model.HelpRequest) (model.HelpRequest, error)
	Update(ctx context.Context, id int64, incoming model.HelpRequest) (model.HelpRequest, error)
	Delete(ctx context.Context, id int64) error
}

// Authenticator превращает bearer-токен в вызывающего.
type Authenticator interface {
	Authenticate(token string) (auth.Principal, error)
}

// Authorizer решает, разрешено ли вызывающему действие над ресурсом.
type Authorizer interface {
	Allowed(p auth.Principal, resource, action string) (bool, error)
}

type Handler struct {
	HelpRequests   HelpRequestService
	Authn          Authenticator
	Authz          Authorizer
	Log            *slog.Logger
	AllowedOrigins []string
}

func NewHandler(
	helpRequests HelpRequestService,
	authn Authenticator,
	authz Authorizer,
	log *slog.Logger,
	allowedOrigins []string,
) *Handler {
	return &Handler{
		HelpRequests:   helpRequests,
		Authn:          authn,
		Authz:          authz,
		Log:            log,
		AllowedOrigins: allowedOrigins,
	}
}

// route описывает строку таблицы маршрутов.
type route struct {
	method  string
	pattern string
	action  string
	handler http.HandlerFunc
}

func (h *Handler) helpRequestRoutes() []route {
	return []route{
		{http.MethodGet, "/all", auth.ActionRead, h.handleHelpRequestList},
		{http.MethodGet, "/", auth.ActionRead, h.handleHelpRequestGet},
		{http.MethodPost, "/post", auth.ActionWrite, h.handleHelpRequestCreate},
		{http.MethodPut, "/", auth.ActionWrite, h.handleHelpRequestUpdate},
		{http.MethodDelete, "/", auth.ActionWrite, h.handleHelpRequestDelete},
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/currentUser", h.handleCurrentUser)

		r.Route("/helprequests", func(r chi.Router) {
			for _, rt := range h.helpRequestRoutes() {
				r.With(h.require(auth.ResourceHelpRequests, rt.action)).
					Method(rt.method, rt.pattern, rt.handler)
			}
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	appErr := service.AsAppError(err)

	attrs := []any{
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
	}
	switch {
	case appErr.Status >= http.StatusInternalServerError:
		h.Log.ErrorContext(r.Context(), "handler error", append(attrs, slog.Any("err", appErr.Err))...)
	case service.IsNotFound(err):
		// обычный исход для чужих или удалённых id
		h.Log.InfoContext(r.Context(), "resource not found", attrs...)
	default:
		h.Log.WarnContext(r.Context(), "request rejected", attrs...)
	}

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	resp.Error.Status = appErr.Status
	h.writeJSON(w, appErr.Status, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Log.Error("encode response", slog.Any("err", err))
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
