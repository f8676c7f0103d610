package cycle

import "interlab/internal/domain/entities"

// OfficialCalendar returns the published 2026 Q1 calendar for program. It is
// served when no configuration has been stored yet.
func OfficialCalendar(program entities.ProgramType) entities.CycleConfig {
	return entities.CycleConfig{
		ID:              entities.CycleConfigID(program, 2026, 1),
		Program:         program,
		Year:            2026,
		Quarter:         1,
		SubmissionStart: "2026-01-05",
		SubmissionEnd:   "2026-01-30",
		EvaluationStart: "2026-02-02",
		EvaluationEnd:   "2026-02-13",
		ResultsDate:     "2026-02-27",
		IsPublished:     false,
		Phase:           entities.PhaseSubmission,
	}
}
