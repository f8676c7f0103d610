package response

import (
	"interlab/internal/domain/entities"
	"interlab/internal/usecase"
)

type CycleConfigResponse struct {
	ID              string `json:"id"`
	Program         string `json:"program"`
	Year            int    `json:"year"`
	Quarter         int    `json:"quarter"`
	SubmissionStart string `json:"submission_start"`
	SubmissionEnd   string `json:"submission_end"`
	EvaluationStart string `json:"evaluation_start"`
	EvaluationEnd   string `json:"evaluation_end"`
	ResultsDate     string `json:"results_date"`
	IsPublished     bool   `json:"is_published"`
	Phase           string `json:"phase"`
	VideoStorageURL string `json:"video_storage_url,omitempty"`
}

func FromCycleConfig(c entities.CycleConfig) CycleConfigResponse {
	return CycleConfigResponse{
		ID:              c.ID,
		Program:         string(c.Program),
		Year:            c.Year,
		Quarter:         c.Quarter,
		SubmissionStart: c.SubmissionStart,
		SubmissionEnd:   c.SubmissionEnd,
		EvaluationStart: c.EvaluationStart,
		EvaluationEnd:   c.EvaluationEnd,
		ResultsDate:     c.ResultsDate,
		IsPublished:     c.IsPublished,
		Phase:           string(c.EffectivePhase()),
		VideoStorageURL: c.VideoStorageURL,
	}
}

type CycleStatusResponse struct {
	Config            CycleConfigResponse `json:"config"`
	Phase             string              `json:"phase"`
	Today             string              `json:"today"`
	SubmissionOpen    bool                `json:"submission_open"`
	EvaluationOpen    bool                `json:"evaluation_open"`
	SubmissionAllowed bool                `json:"submission_allowed"`
	VotingOpen        bool                `json:"voting_open"`
	RankingVisible    bool                `json:"ranking_visible"`
}

func FromCycleStatus(s usecase.CycleStatus) CycleStatusResponse {
	return CycleStatusResponse{
		Config:            FromCycleConfig(s.Config),
		Phase:             string(s.Phase),
		Today:             s.Today,
		SubmissionOpen:    s.SubmissionOpen,
		EvaluationOpen:    s.EvaluationOpen,
		SubmissionAllowed: s.SubmissionAllowed,
		VotingOpen:        s.VotingOpen,
		RankingVisible:    s.RankingVisible,
	}
}
