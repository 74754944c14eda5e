package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"parc-info/pkg/apperrors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T             `json:"list"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	// jamais null côté client, toujours []
	if list == nil {
		list = make([]T, 0)
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body: ListBody[T]{
			List: list,
			Pagination: &PaginationMeta{
				TotalCount: total,
				TotalPages: totalPages,
				Page:       page,
				Limit:      limit,
			},
		},
	})
}

type errorBody struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ErrorResponse traduit une erreur en enveloppe JSON. Les HttpError gardent
// leur message utilisateur, le reste passe par la table des sentinelles.
func ErrorResponse(c echo.Context, err error) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, errorBody{
			Status:  false,
			Message: httpErr.Message,
			Errors:  httpErr.Details,
		})
	}

	code := apperrors.CodeFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = apperrors.ErrInternalServer.Error()
	}
	return c.JSON(code, errorBody{Status: false, Message: msg})
}
