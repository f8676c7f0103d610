package handlers

import (
	"errors"
	"log"
	"net/http"

	request "interlab/internal/adapter/http/dto/request"
	response "interlab/internal/adapter/http/dto/response"
	"interlab/internal/domain/ranking"
	"interlab/internal/usecase"
	"interlab/pkg"

	"github.com/gin-gonic/gin"
)

// VotingHandler serves the final popular vote and the resulting rankings.
type VotingHandler struct {
	voting  usecase.IVotingUseCase
	ranking usecase.IRankingUseCase
}

func NewVotingHandler(voting usecase.IVotingUseCase, ranking usecase.IRankingUseCase) *VotingHandler {
	return &VotingHandler{voting: voting, ranking: ranking}
}

// Ballot godoc
// @Summary      Items open for voting in a program
// @Tags         votes
// @Produce      json
// @Param        program  path      string  true  "IDEIAS or SANGUE_VERDE"
// @Success      200      {object}  response.BallotResponse
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ballot/{program} [get]
func (h *VotingHandler) Ballot(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	b, err := h.voting.Ballot(c.Request.Context(), p, request.ResolveProgram(c.Param("program")))
	if err != nil {
		renderError(c, mapVotingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBallot(b))
}

// CastVotes godoc
// @Summary      Cast one voting session
// @Description  Adds one vote to each selected item (1 to 3 distinct ids).
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        votes  body      request.VoteRequest  true  "Selection"
// @Success      200    {object}  response.VoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /votes [post]
func (h *VotingHandler) CastVotes(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.VoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[vote][handler] invalid payload err=%v", err)
		renderError(c, errInvalidPayload)
		return
	}

	program := payload.ResolveProgram()
	results, err := h.voting.CastVotes(c.Request.Context(), p, program, payload.IDs)
	if err != nil {
		renderError(c, mapVotingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVoteResults(string(program), results))
}

// Ranking godoc
// @Summary      Vote ranking of a program
// @Description  Visible to management roles at any time and to everyone once published.
// @Tags         votes
// @Produce      json
// @Param        program  path      string  true  "IDEIAS or SANGUE_VERDE"
// @Success      200      {object}  response.RankingResponse
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ranking/{program} [get]
func (h *VotingHandler) Ranking(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	r, err := h.ranking.Ranking(c.Request.Context(), p, request.ResolveProgram(c.Param("program")))
	if err != nil {
		renderError(c, mapVotingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRanking(r))
}

func mapVotingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProgram):
		return pkg.NewDomainErrorSimple("INVALID_PROGRAM", "Unknown program", http.StatusBadRequest)
	case errors.Is(err, ranking.ErrEmptySelection), errors.Is(err, ranking.ErrTooManySelections), errors.Is(err, ranking.ErrDuplicateSelection):
		return pkg.NewDomainError("INVALID_SELECTION", "Select between 1 and 3 distinct items", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIdeaNotInnovative):
		return pkg.NewDomainErrorSimple("IDEA_NOT_INNOVATIVE", "Only innovative ideas can receive votes", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIdeaNotFound):
		return pkg.NewDomainErrorSimple("IDEA_NOT_FOUND", "Idea not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNominationNotFound):
		return pkg.NewDomainErrorSimple("NOMINATION_NOT_FOUND", "Nomination not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVotingClosed):
		return pkg.NewDomainErrorSimple("VOTING_CLOSED", "Voting is not open", http.StatusConflict)
	case errors.Is(err, usecase.ErrResultsPending):
		return pkg.NewDomainErrorSimple("RESULTS_PENDING", "Results have not been published yet", http.StatusForbidden)
	default:
		return categoryError(err)
	}
}
