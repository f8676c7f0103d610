package usecase

import (
	"cmp"
	"context"
	"log"
	"slices"

	"interlab/internal/domain/entities"
	"interlab/internal/domain/ranking"
	"interlab/internal/usecase/interfaces"
)

// RankedItem is one row of a program ranking. Ideas and nominations share it.
type RankedItem struct {
	Position int
	ID       string
	Name     string
	Subtitle string
	Votes    int
	Score    float64
}

type Ranking struct {
	Program   entities.ProgramType
	Published bool
	Items     []RankedItem
	Podium    []RankedItem
}

// IRankingUseCase exposes the vote ranking of each program.
type IRankingUseCase interface {
	Ranking(ctx context.Context, p entities.Principal, program entities.ProgramType) (Ranking, error)
}

type RankingUseCase struct {
	ideas       interfaces.IIdeaRepository
	nominations interfaces.INominationRepository
	cycles      interfaces.ICycleConfigRepository
}

var _ IRankingUseCase = (*RankingUseCase)(nil)

func NewRankingUseCase(ideas interfaces.IIdeaRepository, nominations interfaces.INominationRepository, cycles interfaces.ICycleConfigRepository) *RankingUseCase {
	return &RankingUseCase{ideas: ideas, nominations: nominations, cycles: cycles}
}

func (u *RankingUseCase) Ranking(ctx context.Context, p entities.Principal, program entities.ProgramType) (Ranking, error) {
	cfg, err := loadActiveCycle(ctx, u.cycles, program)
	if err != nil {
		return Ranking{}, err
	}
	if !ranking.CanView(p.Role, cfg.IsPublished) {
		log.Printf("[ranking][usecase] hidden until publication program=%s role=%s", program, p.Role)
		return Ranking{}, ErrResultsPending
	}

	var items []RankedItem
	switch program {
	case entities.ProgramIdeas:
		all, err := u.ideas.List(ctx)
		if err != nil {
			return Ranking{}, persistenceError("list ideas", err)
		}
		for _, idea := range rankIdeas(all) {
			items = append(items, RankedItem{ID: idea.ID, Name: idea.Title, Subtitle: idea.Author, Votes: idea.Votes, Score: idea.FinalScore})
		}
	case entities.ProgramSangueVerde:
		all, err := u.nominations.List(ctx)
		if err != nil {
			return Ranking{}, persistenceError("list nominations", err)
		}
		for _, n := range rankNominations(all) {
			items = append(items, RankedItem{ID: n.ID, Name: n.NomineeName, Subtitle: n.CostCenter, Votes: n.Votes})
		}
	}
	for i := range items {
		items[i].Position = i + 1
	}
	if items == nil {
		items = []RankedItem{}
	}

	log.Printf("[ranking][usecase] ranking built program=%s items=%d published=%t", program, len(items), cfg.IsPublished)
	return Ranking{
		Program:   program,
		Published: cfg.IsPublished,
		Items:     items,
		Podium:    ranking.Podium(items, ranking.PodiumSize),
	}, nil
}

// rankIdeas ranks the innovative ideas of a snapshot. Equal vote counts are
// ordered by submission date, then id.
func rankIdeas(all []entities.Idea) []entities.Idea {
	finalists := make([]entities.Idea, 0, len(all))
	for _, idea := range all {
		if idea.Classification == entities.ClassificationInnovative {
			finalists = append(finalists, idea)
		}
	}
	slices.SortFunc(finalists, func(a, b entities.Idea) int {
		return cmp.Or(cmp.Compare(a.DateSubmitted, b.DateSubmitted), cmp.Compare(a.ID, b.ID))
	})
	return ranking.Rank(finalists, func(i entities.Idea) int { return i.Votes })
}

func rankNominations(all []entities.Nomination) []entities.Nomination {
	sorted := slices.Clone(all)
	slices.SortFunc(sorted, func(a, b entities.Nomination) int {
		return cmp.Or(cmp.Compare(a.DateSubmitted, b.DateSubmitted), cmp.Compare(a.ID, b.ID))
	})
	return ranking.Rank(sorted, func(n entities.Nomination) int { return n.Votes })
}
