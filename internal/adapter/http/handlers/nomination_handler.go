package handlers

import (
	"errors"
	"net/http"

	request "interlab/internal/adapter/http/dto/request"
	response "interlab/internal/adapter/http/dto/response"
	"interlab/internal/usecase"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

// NominationHandler serves Sangue Verde nominations.
type NominationHandler struct {
	usecase usecase.INominationUseCase
}

func NewNominationHandler(uc usecase.INominationUseCase) *NominationHandler {
	return &NominationHandler{usecase: uc}
}

// SubmitNomination godoc
// @Summary      Nominate an employee
// @Tags         nominations
// @Accept       json
// @Produce      json
// @Param        nomination  body      request.NominationRequest  true  "Nomination form"
// @Success      201         {object}  response.NominationResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /nominations [post]
func (h *NominationHandler) SubmitNomination(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.NominationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	n, err := h.usecase.Submit(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		renderError(c, mapNominationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromNomination(n))
}

// ListNominations godoc
// @Summary      List nominations
// @Tags         nominations
// @Produce      json
// @Success      200  {array}  response.NominationResponse
// @Security     Bearer
// @Router       /nominations [get]
func (h *NominationHandler) ListNominations(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	ns, err := h.usecase.List(c.Request.Context(), p)
	if err != nil {
		renderError(c, mapNominationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNominations(ns))
}

// Values godoc
// @Summary      Culture values a nomination can cite
// @Tags         nominations
// @Produce      json
// @Success      200  {array}  response.CultureValueResponse
// @Security     Bearer
// @Router       /nominations/values [get]
func (h *NominationHandler) Values(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCultureValues(h.usecase.Values()))
}

func mapNominationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("MANAGER_ONLY", "Only managers can nominate", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSubmissionClosed):
		return pkg.NewDomainErrorSimple("SUBMISSION_CLOSED", "The nomination period is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownCultureValue):
		return pkg.NewDomainErrorSimple("UNKNOWN_CULTURE_VALUE", "Unknown culture value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNominationFieldRequired):
		return pkg.NewDomainError("NOMINATION_FIELD_REQUIRED", "A required field is missing", err, http.StatusBadRequest)
	default:
		return categoryError(err)
	}
}
