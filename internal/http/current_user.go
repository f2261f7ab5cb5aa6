package http

import (
	"net/http"

	"helprequest-service/internal/auth"
	"helprequest-service/internal/service"
)

// handleCurrentUser отдаёт email и роли вызывающего, как их видит сервер.
func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	const handlerName = "current_user"

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, r, handlerName, service.ErrUnauthorized("authentication required"))
		return
	}

	resp := currentUserResponse{
		Email: principal.Email,
		Roles: make([]roleResponse, 0, len(principal.Roles)),
	}
	for _, role := range principal.Roles {
		resp.Roles = append(resp.Roles, roleResponse{Authority: role})
	}

	h.writeJSON(w, http.StatusOK, resp)
}
