package request

import "interlab/internal/domain/entities"

// VoteRequest is one voting session: up to three distinct items of a program.
type VoteRequest struct {
	Program string   `json:"program" binding:"required,program"`
	IDs     []string `json:"ids" binding:"required"`
}

func (r VoteRequest) ResolveProgram() entities.ProgramType {
	return ResolveProgram(r.Program)
}
