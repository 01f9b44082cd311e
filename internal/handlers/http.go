package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
)

type HTTPError struct {
	Err       string            `json:"error"`
	Conflicts []domain.Conflict `json:"conflicts,omitempty"`
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return e.Err
}

// ErrorStatusCode maps domain errors to HTTP status codes
func ErrorStatusCode(err error) int {
	var confirm *domain.ConfirmationRequiredError
	switch {
	case errors.As(err, &confirm):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidMember),
		errors.Is(err, domain.ErrInvalidFleet),
		errors.Is(err, domain.ErrInvalidTimeOff),
		errors.Is(err, domain.ErrInvalidStop):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := ErrorStatusCode(err)
	body := &HTTPError{Err: err.Error()}

	var confirm *domain.ConfirmationRequiredError
	if errors.As(err, &confirm) {
		body.Conflicts = confirm.Conflicts
	}
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		body.Err = "internal error"
	}

	return c.JSON(code, body)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &HTTPError{Err: message})
}
