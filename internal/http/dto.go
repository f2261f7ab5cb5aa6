// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "helprequest-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createHelpRequestForm параметры POST /api/helprequests/post (query или form).
// nil означает, что параметр не передан; пустая строка допустима.
type createHelpRequestForm struct {
	RequesterEmail      *string `json:"requesterEmail" validate:"required"`
	TeamID              *string `json:"teamId" validate:"required"`
	TableOrBreakoutRoom *string `json:"tableOrBreakoutRoom" validate:"required"`
	RequestTime         *string `json:"requestTime" validate:"required"`
	Explanation         *string `json:"explanation" validate:"required"`
	Solved              *string `json:"solved" validate:"required,boolean"`
}

// updateHelpRequestRequest тело PUT /api/helprequests. Поле id не используется.
type updateHelpRequestRequest struct {
	ID                  *int64               `json:"id,omitempty"`
	RequesterEmail      string               `json:"requesterEmail"`
	TeamID              string               `json:"teamId"`
	TableOrBreakoutRoom string               `json:"tableOrBreakoutRoom"`
	RequestTime         *model.LocalDateTime `json:"requestTime" validate:"required"`
	Explanation         string               `json:"explanation"`
	Solved              bool                 `json:"solved"`
}

type currentUserResponse struct {
	Email string         `json:"email"`
	Roles []roleResponse `json:"roles"`
}

type roleResponse struct {
	Authority string `json:"authority"`
}
