package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"helprequest-service/internal/model"
	"helprequest-service/internal/service"
)

func (h *Handler) handleHelpRequestList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "helprequests_all"

	items, err := h.HelpRequests.List(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleHelpRequestGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "helprequests_get"

	id, err := ParseIDQuery(r.URL.Query().Get("id"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	hr, err := h.HelpRequests.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, hr)
}

// handleHelpRequestCreate принимает поля заявки как параметры запроса:
// из query-строки или из тела application/x-www-form-urlencoded.
func (h *Handler) handleHelpRequestCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "helprequests_post"

	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid form parameters"))
		return
	}

	form := createHelpRequestForm{
		RequesterEmail:      formValue(r.Form, "requesterEmail"),
		TeamID:              formValue(r.Form, "teamId"),
		TableOrBreakoutRoom: formValue(r.Form, "tableOrBreakoutRoom"),
		RequestTime:         formValue(r.Form, "requestTime"),
		Explanation:         formValue(r.Form, "explanation"),
		Solved:              formValue(r.Form, "solved"),
	}

	input, err := ValidateCreateForm(form)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	created, err := h.HelpRequests.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

// formValue возвращает значение параметра или nil, если параметра нет.
func formValue(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}

func (h *Handler) handleHelpRequestUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "helprequests_put"

	id, err := ParseIDQuery(r.URL.Query().Get("id"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	var req updateHelpRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, model.ErrInvalidLocalDateTime) {
			h.writeError(w, r, handlerName, service.ErrBadRequest("requestTime must be an ISO-8601 date-time, e.g. 2022-01-03T00:00:00"))
			return
		}
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	incoming, err := ValidateUpdateRequest(req)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	updated, err := h.HelpRequests.Update(r.Context(), id, incoming)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleHelpRequestDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "helprequests_delete"

	id, err := ParseIDQuery(r.URL.Query().Get("id"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.HelpRequests.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: service.DeletedMessage(id)})
}
