package request

import (
	"strings"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase"
)

// IdeaRequest is the idea form as posted by the portal. Field names follow
// the stored document so clients can round-trip what they read.
type IdeaRequest struct {
	Registration          string   `json:"registration"`
	FullName              string   `json:"fullname"`
	Nickname              string   `json:"nickname"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email"`
	GreenBelt             string   `json:"green_belt" binding:"required,notblank"`
	Sector                string   `json:"sector"`
	IdeaDate              string   `json:"idea_date"`
	Category              string   `json:"category"`
	Location              string   `json:"location"`
	Problem               string   `json:"problem" binding:"required,notblank"`
	Proposal              string   `json:"idea" binding:"required,notblank"`
	ImplementationDetails string   `json:"implementation_details"`
	Investment            string   `json:"investment"`
	FinancialReturn       string   `json:"financial_return"`
	Manager               string   `json:"manager"`
	SelectedCriteria      []string `json:"selected_criteria"`
	ProfilePhoto          string   `json:"profile_photo"`
	VideoURL              string   `json:"video_url"`
}

func (r IdeaRequest) ToInput() usecase.IdeaInput {
	return usecase.IdeaInput{
		Registration:          r.Registration,
		FullName:              r.FullName,
		Nickname:              r.Nickname,
		Phone:                 r.Phone,
		Email:                 r.Email,
		GreenBelt:             r.GreenBelt,
		Sector:                r.Sector,
		IdeaDate:              r.IdeaDate,
		Category:              r.Category,
		Location:              r.Location,
		Problem:               r.Problem,
		Proposal:              r.Proposal,
		ImplementationDetails: r.ImplementationDetails,
		Investment:            r.Investment,
		FinancialReturn:       r.FinancialReturn,
		Manager:               r.Manager,
		SelectedCriteria:      r.SelectedCriteria,
		ProfilePhoto:          r.ProfilePhoto,
		VideoURL:              r.VideoURL,
	}
}

// IdeaListQuery holds the optional filters of GET /ideas.
type IdeaListQuery struct {
	Search         string `form:"search"`
	Classification string `form:"classification"`
	Area           string `form:"area"`
}

func (q IdeaListQuery) ToFilter() usecase.IdeaFilter {
	return usecase.IdeaFilter{
		Search:         strings.TrimSpace(q.Search),
		Classification: entities.Classification(strings.ToUpper(strings.TrimSpace(q.Classification))),
		Area:           strings.TrimSpace(q.Area),
	}
}

type FeedbackRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

type ImplementationRequest struct {
	Status string `json:"status" binding:"required"`
	Agent  string `json:"agent"`
}

func (r ImplementationRequest) ResolveStatus() entities.ImplementationStatus {
	return entities.ImplementationStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// ResolveProgram normalizes a program path parameter ("ideias", "sangue_verde").
func ResolveProgram(raw string) entities.ProgramType {
	return entities.ProgramType(strings.ToUpper(strings.TrimSpace(raw)))
}
