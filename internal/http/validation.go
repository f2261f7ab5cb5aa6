package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"helprequest-service/internal/model"
	"helprequest-service/internal/service"
)

var validate = newValidator()

// newValidator называет поля в ошибках так же, как они называются в запросе.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError переводит первую ошибку валидатора в 400 с понятным текстом.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return service.ErrBadRequest("invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return service.ErrBadRequest(fmt.Sprintf("%s is required", fe.Field()))
	case "boolean":
		return service.ErrBadRequest(fmt.Sprintf("%s must be true or false", fe.Field()))
	default:
		return service.ErrBadRequest(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// ParseIDQuery Валидация query-параметра id: обязателен, целое число >= 1.
func ParseIDQuery(raw string) (int64, error) {
	if raw == "" {
		return 0, service.ErrBadRequest("id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, service.ErrBadRequest("id must be a positive integer")
	}
	return id, nil
}

// ValidateCreateForm /api/helprequests/post — параметры запроса
func ValidateCreateForm(form createHelpRequestForm) (model.HelpRequest, error) {
	if err := validate.Struct(form); err != nil {
		return model.HelpRequest{}, validationError(err)
	}

	requestTime, err := model.ParseLocalDateTime(*form.RequestTime)
	if err != nil {
		return model.HelpRequest{}, service.ErrBadRequest("requestTime must be an ISO-8601 date-time, e.g. 2022-01-03T00:00:00")
	}

	solved, err := strconv.ParseBool(*form.Solved)
	if err != nil {
		return model.HelpRequest{}, service.ErrBadRequest("solved must be true or false")
	}

	return model.HelpRequest{
		RequesterEmail:      *form.RequesterEmail,
		TeamID:              *form.TeamID,
		TableOrBreakoutRoom: *form.TableOrBreakoutRoom,
		RequestTime:         requestTime,
		Explanation:         *form.Explanation,
		Solved:              solved,
	}, nil
}

// ValidateUpdateRequest /api/helprequests (PUT) — тело запроса
func ValidateUpdateRequest(req updateHelpRequestRequest) (model.HelpRequest, error) {
	if err := validate.Struct(req); err != nil {
		return model.HelpRequest{}, validationError(err)
	}

	return model.HelpRequest{
		RequesterEmail:      req.RequesterEmail,
		TeamID:              req.TeamID,
		TableOrBreakoutRoom: req.TableOrBreakoutRoom,
		RequestTime:         *req.RequestTime,
		Explanation:         req.Explanation,
		Solved:              req.Solved,
	}, nil
}
