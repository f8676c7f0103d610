package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"interlab/internal/domain/cycle"
	"interlab/internal/domain/entities"
	"interlab/internal/domain/ranking"
	"interlab/internal/usecase/interfaces"
)

type VoteResult struct {
	ID    string
	Votes int
}

// Ballot lists what can be voted on in the current session of a program.
type Ballot struct {
	Program       entities.ProgramType
	MaxSelections int
	Ideas         []entities.Idea
	Nominations   []entities.Nomination
}

// IVotingUseCase exposes the final popular vote.
//
// A session adds one vote to each selected item. Voters are not tracked, so a
// second session by the same person counts again.
type IVotingUseCase interface {
	Ballot(ctx context.Context, p entities.Principal, program entities.ProgramType) (Ballot, error)
	CastVotes(ctx context.Context, p entities.Principal, program entities.ProgramType, ids []string) ([]VoteResult, error)
}

type VotingUseCase struct {
	ideas       interfaces.IIdeaRepository
	nominations interfaces.INominationRepository
	cycles      interfaces.ICycleConfigRepository
	gate        cycle.Gate
}

var _ IVotingUseCase = (*VotingUseCase)(nil)

func NewVotingUseCase(ideas interfaces.IIdeaRepository, nominations interfaces.INominationRepository, cycles interfaces.ICycleConfigRepository, gate cycle.Gate) *VotingUseCase {
	return &VotingUseCase{ideas: ideas, nominations: nominations, cycles: cycles, gate: gate}
}

func (u *VotingUseCase) Ballot(ctx context.Context, p entities.Principal, program entities.ProgramType) (Ballot, error) {
	if err := u.ensureOpen(ctx, p, program); err != nil {
		return Ballot{}, err
	}
	b := Ballot{Program: program, MaxSelections: ranking.MaxSelections, Ideas: []entities.Idea{}, Nominations: []entities.Nomination{}}
	switch program {
	case entities.ProgramIdeas:
		all, err := u.ideas.List(ctx)
		if err != nil {
			return Ballot{}, persistenceError("list ideas", err)
		}
		for _, idea := range all {
			if idea.Classification == entities.ClassificationInnovative {
				b.Ideas = append(b.Ideas, idea)
			}
		}
		sortNewestFirst(b.Ideas)
	case entities.ProgramSangueVerde:
		all, err := u.nominations.List(ctx)
		if err != nil {
			return Ballot{}, persistenceError("list nominations", err)
		}
		b.Nominations = all
		sortNominationsNewestFirst(b.Nominations)
	}
	return b, nil
}

// CastVotes checks every selected id before writing, tallies the session and
// applies each item's count with the store's atomic counter. A write failure midway leaves the
// earlier increments in place.
func (u *VotingUseCase) CastVotes(ctx context.Context, p entities.Principal, program entities.ProgramType, ids []string) ([]VoteResult, error) {
	log.Printf("[vote][usecase] cast start program=%s voter=%s items=%d", program, p.Registration, len(ids))
	selection := make([]string, 0, len(ids))
	for _, id := range ids {
		selection = append(selection, strings.TrimSpace(id))
	}
	for _, id := range selection {
		if id == "" && program == entities.ProgramSangueVerde {
			return nil, ErrInvalidNominationID
		}
		if id == "" {
			return nil, ErrInvalidIdeaID
		}
	}
	if err := ranking.ValidateSelection(selection); err != nil {
		return nil, validationError(err)
	}
	if err := u.ensureOpen(ctx, p, program); err != nil {
		return nil, err
	}

	for _, id := range selection {
		if err := u.checkCandidate(ctx, program, id); err != nil {
			log.Printf("[vote][usecase] rejected program=%s id=%s err=%v", program, id, err)
			return nil, err
		}
	}

	tally := ranking.RecordVote(nil, selection)
	results := make([]VoteResult, 0, len(selection))
	for _, id := range selection {
		var votes int
		for n := 0; n < tally[id]; n++ {
			v, err := u.increment(ctx, program, id)
			if err != nil {
				log.Printf("[vote][usecase] increment failed program=%s id=%s err=%v", program, id, err)
				return nil, persistenceError("increment votes", err)
			}
			if v == 0 {
				return nil, notFoundFor(program, id)
			}
			votes = v
		}
		results = append(results, VoteResult{ID: id, Votes: votes})
	}
	log.Printf("[vote][usecase] cast done program=%s items=%d", program, len(results))
	return results, nil
}

func (u *VotingUseCase) ensureOpen(ctx context.Context, p entities.Principal, program entities.ProgramType) error {
	if !p.Role.Valid() {
		return ErrRoleNotAllowed
	}
	cfg, err := loadActiveCycle(ctx, u.cycles, program)
	if err != nil {
		return err
	}
	if !u.gate.IsVotingOpen(p.Role, cfg) {
		return ErrVotingClosed
	}
	return nil
}

func (u *VotingUseCase) checkCandidate(ctx context.Context, program entities.ProgramType, id string) error {
	if program == entities.ProgramSangueVerde {
		n, err := u.nominations.GetByID(ctx, id)
		if err != nil {
			return persistenceError("get nomination", err)
		}
		if n.ID == "" {
			return notFoundFor(program, id)
		}
		return nil
	}

	idea, err := u.ideas.GetByID(ctx, id)
	if err != nil {
		return persistenceError("get idea", err)
	}
	if idea.ID == "" {
		return notFoundFor(program, id)
	}
	if idea.Classification != entities.ClassificationInnovative {
		return fmt.Errorf("%w: %s", ErrIdeaNotInnovative, id)
	}
	return nil
}

func (u *VotingUseCase) increment(ctx context.Context, program entities.ProgramType, id string) (int, error) {
	if program == entities.ProgramSangueVerde {
		return u.nominations.IncrementVotes(ctx, id)
	}
	return u.ideas.IncrementVotes(ctx, id)
}

func notFoundFor(program entities.ProgramType, id string) error {
	if program == entities.ProgramSangueVerde {
		return fmt.Errorf("%w: %s", ErrNominationNotFound, id)
	}
	return fmt.Errorf("%w: %s", ErrIdeaNotFound, id)
}
