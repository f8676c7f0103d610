package entities

import "fmt"

type ProgramType string

const (
	ProgramIdeas       ProgramType = "IDEIAS"
	ProgramSangueVerde ProgramType = "SANGUE_VERDE"
)

func (p ProgramType) Valid() bool {
	return p == ProgramIdeas || p == ProgramSangueVerde
}

// CyclePhase is a display label set by administrators. It is not derived from
// the configured dates and may disagree with them.
type CyclePhase string

const (
	PhaseSubmission          CyclePhase = "SUBMISSAO"
	PhaseCommitteeEvaluation CyclePhase = "AVALIACO_COMITE"
	PhaseFinalVoting         CyclePhase = "VOTACAO_FINAL"
	PhasePublished           CyclePhase = "PUBLICADO"
)

// CycleConfig is one program period (year + quarter).
//
// Storage model (DynamoDB, cycle_configs table):
//   - PK: id, either "{PROGRAM}_{YEAR}_Q{QUARTER}" (history) or an active pointer
//     ("atual_ideias" / "atual_sangue").
//
// All dates are local calendar dates formatted YYYY-MM-DD.
type CycleConfig struct {
	ID              string      `json:"id"`
	Program         ProgramType `json:"program"`
	Year            int         `json:"year"`
	Quarter         int         `json:"quarter"`
	SubmissionStart string      `json:"submission_start"`
	SubmissionEnd   string      `json:"submission_end"`
	EvaluationStart string      `json:"evaluation_start"`
	EvaluationEnd   string      `json:"evaluation_end"`
	ResultsDate     string      `json:"results_date"`
	IsPublished     bool        `json:"is_published"`
	Phase           CyclePhase  `json:"phase,omitempty"`
	VideoStorageURL string      `json:"video_storage_url,omitempty"`
}

// EffectivePhase defaults an unset label to the submission phase.
func (c CycleConfig) EffectivePhase() CyclePhase {
	if c.Phase == "" {
		return PhaseSubmission
	}
	return c.Phase
}

func CycleConfigID(program ProgramType, year, quarter int) string {
	return fmt.Sprintf("%s_%d_Q%d", program, year, quarter)
}

// ActiveCycleConfigID returns the document holding the active config of a program.
func ActiveCycleConfigID(program ProgramType) string {
	if program == ProgramSangueVerde {
		return "atual_sangue"
	}
	return "atual_ideias"
}
