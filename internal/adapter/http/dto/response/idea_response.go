package response

import (
	"time"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase"
)

type CriterionScoreResponse struct {
	CriterionID string `json:"criterion_id"`
	Score       int    `json:"score"`
}

type EvaluationResponse struct {
	EvaluatorID    string                   `json:"evaluator_id"`
	Type           string                   `json:"type"`
	Date           time.Time                `json:"date"`
	Scores         []CriterionScoreResponse `json:"scores,omitempty"`
	RelevanceScore int                      `json:"relevance_score,omitempty"`
	Justification  string                   `json:"justification,omitempty"`
}

type FeedbackResponse struct {
	User string    `json:"user"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

type IdeaResponse struct {
	ID                    string               `json:"id"`
	Registration          string               `json:"registration"`
	FullName              string               `json:"fullname"`
	Nickname              string               `json:"nickname,omitempty"`
	Phone                 string               `json:"phone"`
	Email                 string               `json:"email"`
	GreenBelt             string               `json:"green_belt"`
	Sector                string               `json:"sector"`
	IdeaDate              string               `json:"idea_date"`
	Category              string               `json:"category"`
	Location              string               `json:"location"`
	Problem               string               `json:"problem"`
	Proposal              string               `json:"idea"`
	ImplementationDetails string               `json:"implementation_details"`
	Investment            string               `json:"investment"`
	FinancialReturn       string               `json:"financial_return"`
	Manager               string               `json:"manager"`
	SelectedCriteria      []string             `json:"selected_criteria"`
	ProfilePhoto          string               `json:"profile_photo,omitempty"`
	VideoURL              string               `json:"video_url,omitempty"`
	Title                 string               `json:"title"`
	Author                string               `json:"author"`
	AuthorID              string               `json:"author_id"`
	Area                  string               `json:"area"`
	DateSubmitted         string               `json:"date_submitted"`
	Cycle                 int                  `json:"cycle"`
	Year                  int                  `json:"year"`
	FinalType             string               `json:"final_type"`
	Evaluations           []EvaluationResponse `json:"evaluations"`
	FinalScore            float64              `json:"final_score"`
	Votes                 int                  `json:"votes"`
	ImplementationStatus  string               `json:"implementation_status"`
	ImplementationAgent   string               `json:"implementation_agent,omitempty"`
	Feedbacks             []FeedbackResponse   `json:"feedbacks"`
}

func FromIdea(i entities.Idea) IdeaResponse {
	res := IdeaResponse{
		ID:                    i.ID,
		Registration:          i.Registration,
		FullName:              i.FullName,
		Nickname:              i.Nickname,
		Phone:                 i.Phone,
		Email:                 i.Email,
		GreenBelt:             i.GreenBelt,
		Sector:                i.Sector,
		IdeaDate:              i.IdeaDate,
		Category:              i.Category,
		Location:              i.Location,
		Problem:               i.Problem,
		Proposal:              i.Proposal,
		ImplementationDetails: i.ImplementationDetails,
		Investment:            i.Investment,
		FinancialReturn:       i.FinancialReturn,
		Manager:               i.Manager,
		SelectedCriteria:      append([]string{}, i.SelectedCriteria...),
		ProfilePhoto:          i.ProfilePhoto,
		VideoURL:              i.VideoURL,
		Title:                 i.Title,
		Author:                i.Author,
		AuthorID:              i.AuthorID,
		Area:                  i.Area,
		DateSubmitted:         i.DateSubmitted,
		Cycle:                 i.Cycle,
		Year:                  i.Year,
		FinalType:             string(i.Classification),
		Evaluations:           make([]EvaluationResponse, 0, len(i.Evaluations)),
		FinalScore:            i.FinalScore,
		Votes:                 i.Votes,
		ImplementationAgent:   i.ImplementationAgent,
		Feedbacks:             make([]FeedbackResponse, 0, len(i.Feedbacks)),
	}
	if i.Classification == entities.ClassificationInnovative {
		res.ImplementationStatus = string(i.EffectiveImplementationStatus())
	}
	for _, e := range i.Evaluations {
		res.Evaluations = append(res.Evaluations, fromEvaluation(e))
	}
	for _, f := range i.Feedbacks {
		res.Feedbacks = append(res.Feedbacks, FeedbackResponse(f))
	}
	return res
}

func FromIdeas(ideas []entities.Idea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, FromIdea(i))
	}
	return out
}

func fromEvaluation(e entities.Evaluation) EvaluationResponse {
	res := EvaluationResponse{
		EvaluatorID:    e.EvaluatorID,
		Type:           string(e.Type),
		Date:           e.Date,
		RelevanceScore: e.RelevanceScore,
		Justification:  e.Justification,
	}
	for _, s := range e.Scores {
		res.Scores = append(res.Scores, CriterionScoreResponse(s))
	}
	return res
}

type ImplementationColumnResponse struct {
	Status string         `json:"status"`
	Ideas  []IdeaResponse `json:"ideas"`
}

type ImplementationBoardResponse struct {
	Columns []ImplementationColumnResponse `json:"columns"`
}

func FromImplementationBoard(b usecase.ImplementationBoard) ImplementationBoardResponse {
	res := ImplementationBoardResponse{Columns: make([]ImplementationColumnResponse, 0, len(b.Columns))}
	for _, col := range b.Columns {
		res.Columns = append(res.Columns, ImplementationColumnResponse{Status: string(col.Status), Ideas: FromIdeas(col.Ideas)})
	}
	return res
}

type DashboardStatsResponse struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Innovative  int `json:"innovative"`
	Implemented int `json:"implemented"`
}

type FeedbackActivityResponse struct {
	IdeaID     string           `json:"idea_id"`
	IdeaTitle  string           `json:"idea_title"`
	IdeaAuthor string           `json:"idea_author"`
	Feedback   FeedbackResponse `json:"feedback"`
}

type DashboardResponse struct {
	Stats           DashboardStatsResponse     `json:"stats"`
	RankingVisible  bool                       `json:"ranking_visible"`
	Podium          []IdeaResponse             `json:"podium"`
	RecentFeedbacks []FeedbackActivityResponse `json:"recent_feedbacks"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	res := DashboardResponse{
		Stats:           DashboardStatsResponse(d.Stats),
		RankingVisible:  d.RankingVisible,
		Podium:          FromIdeas(d.Podium),
		RecentFeedbacks: make([]FeedbackActivityResponse, 0, len(d.RecentFeedbacks)),
	}
	for _, a := range d.RecentFeedbacks {
		res.RecentFeedbacks = append(res.RecentFeedbacks, FeedbackActivityResponse{
			IdeaID:     a.IdeaID,
			IdeaTitle:  a.IdeaTitle,
			IdeaAuthor: a.IdeaAuthor,
			Feedback:   FeedbackResponse(a.Feedback),
		})
	}
	return res
}
