package handlers

import (
	"errors"
	"log"
	"net/http"

	"interlab/internal/adapter/http/middleware"
	"interlab/internal/domain/entities"
	"interlab/internal/usecase"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// principal returns the authenticated caller, writing 401 when the auth
// middleware did not run.
func principal(c *gin.Context) (entities.Principal, bool) {
	p, err := middleware.PrincipalFrom(c)
	if err != nil {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}

func renderError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] internal error path=%s err=%v", c.FullPath(), appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// categoryError maps the use case error categories. Handlers check their
// specific errors first and fall back to this.
func categoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Operation not allowed for this user", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrWindowClosed):
		return pkg.NewDomainError("CYCLE_CLOSED", "The cycle window is closed", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
