package usecase

import (
	"context"
	"log"
	"time"

	"interlab/internal/domain/cycle"
	"interlab/internal/domain/entities"
	"interlab/internal/domain/ranking"
	"interlab/internal/usecase/interfaces"
)

// CycleStatus is the active config together with the signals derived from it
// for one caller. Phase and the date windows are independent: an administrator
// may label a cycle VOTACAO_FINAL while the submission window is still open.
type CycleStatus struct {
	Config            entities.CycleConfig
	Phase             entities.CyclePhase
	Today             string
	SubmissionOpen    bool
	EvaluationOpen    bool
	SubmissionAllowed bool
	VotingOpen        bool
	RankingVisible    bool
}

// ICycleUseCase exposes the read-only program calendars.
type ICycleUseCase interface {
	Active(ctx context.Context, program entities.ProgramType) (entities.CycleConfig, error)
	Status(ctx context.Context, p entities.Principal, program entities.ProgramType) (CycleStatus, error)
}

type CycleUseCase struct {
	repo interfaces.ICycleConfigRepository
	gate cycle.Gate
	now  func() time.Time
}

var _ ICycleUseCase = (*CycleUseCase)(nil)

func NewCycleUseCase(repo interfaces.ICycleConfigRepository, gate cycle.Gate) *CycleUseCase {
	return &CycleUseCase{repo: repo, gate: gate, now: time.Now}
}

func (u *CycleUseCase) Active(ctx context.Context, program entities.ProgramType) (entities.CycleConfig, error) {
	return loadActiveCycle(ctx, u.repo, program)
}

func (u *CycleUseCase) Status(ctx context.Context, p entities.Principal, program entities.ProgramType) (CycleStatus, error) {
	cfg, err := loadActiveCycle(ctx, u.repo, program)
	if err != nil {
		return CycleStatus{}, err
	}
	now := u.now()
	return CycleStatus{
		Config:            cfg,
		Phase:             cfg.EffectivePhase(),
		Today:             cycle.FormatDate(now, u.gate.Location),
		SubmissionOpen:    u.gate.SubmissionOpen(cfg, now),
		EvaluationOpen:    u.gate.EvaluationOpen(cfg, now),
		SubmissionAllowed: u.gate.IsSubmissionAllowed(p.Role, cfg, now),
		VotingOpen:        u.gate.IsVotingOpen(p.Role, cfg),
		RankingVisible:    ranking.CanView(p.Role, cfg.IsPublished),
	}, nil
}

// loadActiveCycle reads the active pointer of program, falling back to the
// official calendar when nothing has been stored yet.
func loadActiveCycle(ctx context.Context, repo interfaces.ICycleConfigRepository, program entities.ProgramType) (entities.CycleConfig, error) {
	if !program.Valid() {
		return entities.CycleConfig{}, ErrInvalidProgram
	}
	id := entities.ActiveCycleConfigID(program)
	cfg, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[cycle][usecase] load failed id=%s err=%v", id, err)
		return entities.CycleConfig{}, persistenceError("get cycle config", err)
	}
	if cfg.ID == "" {
		log.Printf("[cycle][usecase] no stored config id=%s; using official calendar", id)
		return cycle.OfficialCalendar(program), nil
	}
	if cfg.Program == "" {
		cfg.Program = program
	}
	return cfg, nil
}
