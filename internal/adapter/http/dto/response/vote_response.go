package response

import "interlab/internal/usecase"

type VoteResultResponse struct {
	ID    string `json:"id"`
	Votes int    `json:"votes"`
}

type VoteResponse struct {
	Program string               `json:"program"`
	Results []VoteResultResponse `json:"results"`
}

func FromVoteResults(program string, rs []usecase.VoteResult) VoteResponse {
	res := VoteResponse{Program: program, Results: make([]VoteResultResponse, 0, len(rs))}
	for _, r := range rs {
		res.Results = append(res.Results, VoteResultResponse(r))
	}
	return res
}

type BallotResponse struct {
	Program       string               `json:"program"`
	MaxSelections int                  `json:"max_selections"`
	Ideas         []IdeaResponse       `json:"ideas"`
	Nominations   []NominationResponse `json:"nominations"`
}

func FromBallot(b usecase.Ballot) BallotResponse {
	return BallotResponse{
		Program:       string(b.Program),
		MaxSelections: b.MaxSelections,
		Ideas:         FromIdeas(b.Ideas),
		Nominations:   FromNominations(b.Nominations),
	}
}

type RankedItemResponse struct {
	Position int     `json:"position"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Subtitle string  `json:"subtitle"`
	Votes    int     `json:"votes"`
	Score    float64 `json:"score,omitempty"`
}

type RankingResponse struct {
	Program   string               `json:"program"`
	Published bool                 `json:"published"`
	Items     []RankedItemResponse `json:"items"`
	Podium    []RankedItemResponse `json:"podium"`
}

func FromRanking(r usecase.Ranking) RankingResponse {
	return RankingResponse{
		Program:   string(r.Program),
		Published: r.Published,
		Items:     fromRankedItems(r.Items),
		Podium:    fromRankedItems(r.Podium),
	}
}

func fromRankedItems(items []usecase.RankedItem) []RankedItemResponse {
	out := make([]RankedItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RankedItemResponse(it))
	}
	return out
}
