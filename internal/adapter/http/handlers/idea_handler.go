package handlers

import (
	"errors"
	"log"
	"net/http"

	request "interlab/internal/adapter/http/dto/request"
	response "interlab/internal/adapter/http/dto/response"
	"interlab/internal/usecase"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

// IdeaHandler serves idea submission, browsing and follow-up.
type IdeaHandler struct {
	usecase usecase.IIdeaUseCase
}

func NewIdeaHandler(uc usecase.IIdeaUseCase) *IdeaHandler {
	return &IdeaHandler{usecase: uc}
}

// SubmitIdea godoc
// @Summary      Submit an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        idea  body      request.IdeaRequest  true  "Idea form"
// @Success      201   {object}  response.IdeaResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ideas [post]
func (h *IdeaHandler) SubmitIdea(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.IdeaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[idea][handler] invalid payload err=%v", err)
		renderError(c, errInvalidPayload)
		return
	}

	idea, err := h.usecase.Submit(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromIdea(idea))
}

// ListIdeas godoc
// @Summary      List ideas visible to the caller
// @Tags         ideas
// @Produce      json
// @Param        search          query  string  false  "Free text over title, author and problem"
// @Param        classification  query  string  false  "INOVADORA, MELHORIA_CONTINUA, NAO_APLICAVEL or PENDENTE"
// @Param        area            query  string  false  "Area"
// @Success      200  {array}   response.IdeaResponse
// @Security     Bearer
// @Router       /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var q request.IdeaListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	ideas, err := h.usecase.List(c.Request.Context(), p, q.ToFilter())
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdeas(ideas))
}

// GetIdea godoc
// @Summary      Get an idea
// @Tags         ideas
// @Produce      json
// @Param        id   path      string  true  "Idea ID"
// @Success      200  {object}  response.IdeaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	idea, err := h.usecase.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdea(idea))
}

// EditIdea godoc
// @Summary      Edit an idea while submissions are open
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Idea ID"
// @Param        idea  body      request.IdeaRequest  true  "Idea form"
// @Success      200   {object}  response.IdeaResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ideas/{id} [put]
func (h *IdeaHandler) EditIdea(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.IdeaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	idea, err := h.usecase.Edit(c.Request.Context(), p, c.Param("id"), payload.ToInput())
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdea(idea))
}

// AddFeedback godoc
// @Summary      Append a feedback entry to an idea
// @Tags         ideas
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Idea ID"
// @Param        feedback  body      request.FeedbackRequest  true  "Feedback"
// @Success      201       {object}  response.IdeaResponse
// @Security     Bearer
// @Router       /ideas/{id}/feedbacks [post]
func (h *IdeaHandler) AddFeedback(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.FeedbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	idea, err := h.usecase.AddFeedback(c.Request.Context(), p, c.Param("id"), payload.Text)
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromIdea(idea))
}

// UpdateImplementation godoc
// @Summary      Move an innovative idea on the implementation board
// @Tags         implementation
// @Accept       json
// @Produce      json
// @Param        id      path      string                         true  "Idea ID"
// @Param        status  body      request.ImplementationRequest  true  "New status"
// @Success      200     {object}  response.IdeaResponse
// @Security     Bearer
// @Router       /ideas/{id}/implementation [patch]
func (h *IdeaHandler) UpdateImplementation(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ImplementationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	idea, err := h.usecase.UpdateImplementation(c.Request.Context(), p, c.Param("id"), payload.ResolveStatus(), payload.Agent)
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdea(idea))
}

// ImplementationBoard godoc
// @Summary      Innovative ideas grouped by implementation status
// @Tags         implementation
// @Produce      json
// @Success      200  {object}  response.ImplementationBoardResponse
// @Security     Bearer
// @Router       /implementation [get]
func (h *IdeaHandler) ImplementationBoard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	board, err := h.usecase.ImplementationBoard(c.Request.Context(), p)
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImplementationBoard(board))
}

// Dashboard godoc
// @Summary      Caller dashboard
// @Tags         ideas
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Security     Bearer
// @Router       /dashboard [get]
func (h *IdeaHandler) Dashboard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	d, err := h.usecase.Dashboard(c.Request.Context(), p)
	if err != nil {
		renderError(c, mapIdeaError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func mapIdeaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return pkg.NewDomainErrorSimple("IDEA_NOT_FOUND", "Idea not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotIdeaAuthor):
		return pkg.NewDomainErrorSimple("NOT_IDEA_AUTHOR", "Only the author can change this idea", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSubmissionClosed):
		return pkg.NewDomainErrorSimple("SUBMISSION_CLOSED", "The submission period is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrIdeaNotInnovative):
		return pkg.NewDomainErrorSimple("IDEA_NOT_INNOVATIVE", "Only innovative ideas can be implemented", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImplementationStatus):
		return pkg.NewDomainErrorSimple("INVALID_IMPLEMENTATION_STATUS", "Invalid implementation status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIdeaFieldRequired):
		return pkg.NewDomainError("IDEA_FIELD_REQUIRED", "A required field is missing", err, http.StatusBadRequest)
	default:
		return categoryError(err)
	}
}
