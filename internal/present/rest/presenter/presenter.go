package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ahmedfares-dev/darmasr/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Created wraps a successful creation.
func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func BadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// Error maps a domain error onto its HTTP status and machine-readable
// kind. Errors outside the taxonomy become opaque 500s.
func Error(c echo.Context, err error) error {
	kind := domain.ErrorKind(err)
	switch kind {
	case "":
		slog.Error("internal error",
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	case "not_found":
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error(), Kind: kind})
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: kind})
	}
}
