package entities

import "time"

// Classification is the committee verdict on an idea.
//
// Wire values follow the labels already stored by the portal (Portuguese).
type Classification string

const (
	ClassificationInnovative            Classification = "INOVADORA"
	ClassificationContinuousImprovement Classification = "MELHORIA_CONTINUA"
	ClassificationNotApplicable         Classification = "NAO_APLICAVEL"
	ClassificationPending               Classification = "PENDENTE"
)

func (c Classification) Valid() bool {
	switch c {
	case ClassificationInnovative, ClassificationContinuousImprovement, ClassificationNotApplicable, ClassificationPending:
		return true
	}
	return false
}

// ImplementationStatus tracks an innovative idea after the award cycle.
type ImplementationStatus string

const (
	ImplementationPlanning   ImplementationStatus = "PLANEJAMENTO"
	ImplementationInProgress ImplementationStatus = "EM_EXECUCAO"
	ImplementationDone       ImplementationStatus = "CONCLUIDO"
	ImplementationCancelled  ImplementationStatus = "CANCELADO"
)

var ImplementationStatuses = []ImplementationStatus{
	ImplementationPlanning,
	ImplementationInProgress,
	ImplementationDone,
	ImplementationCancelled,
}

func (s ImplementationStatus) Valid() bool {
	for _, v := range ImplementationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type CriterionScore struct {
	CriterionID string `json:"criterion_id"`
	Score       int    `json:"score"`
}

// Evaluation is the committee record that produced the current classification.
//
// Scores is only set for innovative ideas; RelevanceScore only for continuous
// improvement. An idea holds at most one evaluation: re-evaluating replaces it.
type Evaluation struct {
	EvaluatorID    string           `json:"evaluator_id"`
	Type           Classification   `json:"type"`
	Date           time.Time        `json:"date"`
	Scores         []CriterionScore `json:"scores,omitempty"`
	RelevanceScore int              `json:"relevance_score,omitempty"`
	Justification  string           `json:"justification,omitempty"`
}

type Feedback struct {
	User string    `json:"user"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Idea is an employee improvement proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - FinalScore is non-zero only when Classification is INOVADORA.
//   - DateSubmitted is a local calendar date (YYYY-MM-DD) in the program timezone.
type Idea struct {
	ID                    string   `json:"id"`
	Registration          string   `json:"registration"`
	FullName              string   `json:"fullname"`
	Nickname              string   `json:"nickname,omitempty"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email"`
	GreenBelt             string   `json:"green_belt"`
	Sector                string   `json:"sector"`
	IdeaDate              string   `json:"idea_date"`
	Category              string   `json:"category"`
	Location              string   `json:"location"`
	Problem               string   `json:"problem"`
	Proposal              string   `json:"idea"`
	ImplementationDetails string   `json:"implementation_details"`
	Investment            string   `json:"investment"`
	FinancialReturn       string   `json:"financial_return"`
	Manager               string   `json:"manager"`
	SelectedCriteria      []string `json:"selected_criteria"`
	ProfilePhoto          string   `json:"profile_photo,omitempty"`
	VideoURL              string   `json:"video_url,omitempty"`

	Title         string `json:"title"`
	Author        string `json:"author"`
	AuthorID      string `json:"author_id"`
	Area          string `json:"area"`
	DateSubmitted string `json:"date_submitted"`
	Cycle         int    `json:"cycle"`
	Year          int    `json:"year"`

	Classification Classification `json:"final_type"`
	Evaluations    []Evaluation   `json:"evaluations"`
	FinalScore     float64        `json:"final_score"`
	Votes          int            `json:"votes"`

	ImplementationStatus ImplementationStatus `json:"implementation_status,omitempty"`
	ImplementationAgent  string               `json:"implementation_agent,omitempty"`

	Feedbacks []Feedback `json:"feedbacks"`
}

// CurrentEvaluation returns the authoritative evaluation, if any.
func (i Idea) CurrentEvaluation() (Evaluation, bool) {
	if len(i.Evaluations) == 0 {
		return Evaluation{}, false
	}
	return i.Evaluations[len(i.Evaluations)-1], true
}

// EffectiveImplementationStatus defaults unset statuses to planning.
func (i Idea) EffectiveImplementationStatus() ImplementationStatus {
	if i.ImplementationStatus == "" {
		return ImplementationPlanning
	}
	return i.ImplementationStatus
}
