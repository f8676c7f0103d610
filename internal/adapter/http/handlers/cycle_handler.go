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

type CycleHandler struct {
	usecase usecase.ICycleUseCase
}

func NewCycleHandler(uc usecase.ICycleUseCase) *CycleHandler {
	return &CycleHandler{usecase: uc}
}

// Status godoc
// @Summary      Active cycle of a program and what the caller may do in it
// @Tags         cycles
// @Produce      json
// @Param        program  path      string  true  "IDEIAS or SANGUE_VERDE"
// @Success      200      {object}  response.CycleStatusResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /cycles/{program} [get]
func (h *CycleHandler) Status(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	s, err := h.usecase.Status(c.Request.Context(), p, request.ResolveProgram(c.Param("program")))
	if err != nil {
		renderError(c, mapCycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCycleStatus(s))
}

func mapCycleError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidProgram) {
		return pkg.NewDomainErrorSimple("INVALID_PROGRAM", "Unknown program", http.StatusBadRequest)
	}
	return categoryError(err)
}
