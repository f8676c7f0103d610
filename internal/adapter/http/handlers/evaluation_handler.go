package handlers

import (
	"errors"
	"log"
	"net/http"

	request "interlab/internal/adapter/http/dto/request"
	response "interlab/internal/adapter/http/dto/response"
	"interlab/internal/domain/evaluation"
	"interlab/internal/usecase"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

// EvaluationHandler serves the committee classification workflow.
type EvaluationHandler struct {
	usecase usecase.IEvaluationUseCase
}

func NewEvaluationHandler(uc usecase.IEvaluationUseCase) *EvaluationHandler {
	return &EvaluationHandler{usecase: uc}
}

// PendingQueue godoc
// @Summary      Ideas waiting for classification
// @Tags         evaluation
// @Produce      json
// @Success      200  {array}   response.IdeaResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /evaluations/pending [get]
func (h *EvaluationHandler) PendingQueue(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	ideas, err := h.usecase.PendingQueue(c.Request.Context(), p)
	if err != nil {
		renderError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdeas(ideas))
}

// Evaluate godoc
// @Summary      Classify and score an idea
// @Description  Replaces any previous evaluation of the idea.
// @Tags         evaluation
// @Accept       json
// @Produce      json
// @Param        id          path      string                     true  "Idea ID"
// @Param        evaluation  body      request.EvaluationRequest  true  "Verdict"
// @Success      200         {object}  response.IdeaResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      403         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ideas/{id}/evaluation [post]
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.EvaluationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[evaluation][handler] invalid payload err=%v", err)
		renderError(c, errInvalidPayload)
		return
	}

	idea, err := h.usecase.Evaluate(c.Request.Context(), p, c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, mapEvaluationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdea(idea))
}

// Criteria godoc
// @Summary      Evaluation criteria and weights
// @Tags         evaluation
// @Produce      json
// @Success      200  {object}  response.CriteriaResponse
// @Security     Bearer
// @Router       /evaluations/criteria [get]
func (h *EvaluationHandler) Criteria(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWeightTable(h.usecase.Criteria()))
}

func mapEvaluationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return pkg.NewDomainErrorSimple("IDEA_NOT_FOUND", "Idea not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("EVALUATOR_ONLY", "Only committee members can evaluate ideas", http.StatusForbidden)
	case errors.Is(err, evaluation.ErrInvalidEvaluationType):
		return pkg.NewDomainErrorSimple("INVALID_EVALUATION_TYPE", "Invalid evaluation type", http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrEmptyRatings), errors.Is(err, evaluation.ErrUnknownCriterion), errors.Is(err, evaluation.ErrRatingOutOfRange):
		return pkg.NewDomainError("INVALID_RATINGS", "Invalid criterion ratings", err, http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrRelevanceOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_RELEVANCE", "Relevance score must be between 1 and 3", http.StatusBadRequest)
	case errors.Is(err, evaluation.ErrJustificationRequired):
		return pkg.NewDomainErrorSimple("JUSTIFICATION_REQUIRED", "A justification is required", http.StatusBadRequest)
	default:
		return categoryError(err)
	}
}
