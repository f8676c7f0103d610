package usecase

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"interlab/internal/domain/cycle"
	"interlab/internal/domain/entities"
	"interlab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNominationFieldRequired = fmt.Errorf("%w: required field missing", ErrValidation)
	ErrUnknownCultureValue     = fmt.Errorf("%w: unknown culture value", ErrValidation)
)

// NominationInput is a Sangue Verde candidacy as filled in by a manager.
type NominationInput struct {
	NomineeName      string
	Registration     string
	CostCenter       string
	AdmissionDate    string
	SelectedValues   []string
	Justification    string
	ProfilePhoto     string
	ValidationVideos []string
}

func (in NominationInput) normalized() NominationInput {
	in.NomineeName = strings.TrimSpace(in.NomineeName)
	in.Registration = strings.TrimSpace(in.Registration)
	in.CostCenter = strings.TrimSpace(in.CostCenter)
	in.AdmissionDate = strings.TrimSpace(in.AdmissionDate)
	in.Justification = strings.TrimSpace(in.Justification)
	in.ProfilePhoto = strings.TrimSpace(in.ProfilePhoto)

	values := make([]string, 0, len(in.SelectedValues))
	for _, v := range in.SelectedValues {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	in.SelectedValues = values

	videos := make([]string, 0, len(in.ValidationVideos))
	for _, v := range in.ValidationVideos {
		if v = strings.TrimSpace(v); v != "" {
			videos = append(videos, v)
		}
	}
	in.ValidationVideos = videos
	return in
}

func (in NominationInput) validate() error {
	switch {
	case in.NomineeName == "":
		return fmt.Errorf("%w: nominee_name", ErrNominationFieldRequired)
	case in.Registration == "":
		return fmt.Errorf("%w: registration", ErrNominationFieldRequired)
	case in.Justification == "":
		return fmt.Errorf("%w: justification", ErrNominationFieldRequired)
	case in.ProfilePhoto == "":
		return fmt.Errorf("%w: profile_photo", ErrNominationFieldRequired)
	case len(in.SelectedValues) == 0:
		return fmt.Errorf("%w: selected_values", ErrNominationFieldRequired)
	}
	for _, v := range in.SelectedValues {
		if !entities.IsCultureValue(v) {
			return fmt.Errorf("%w: %s", ErrUnknownCultureValue, v)
		}
	}
	return nil
}

// INominationUseCase exposes the Sangue Verde culture-award nominations.
type INominationUseCase interface {
	Submit(ctx context.Context, p entities.Principal, in NominationInput) (entities.Nomination, error)
	List(ctx context.Context, p entities.Principal) ([]entities.Nomination, error)
	Values() []entities.CultureValue
}

type NominationUseCase struct {
	repo   interfaces.INominationRepository
	cycles interfaces.ICycleConfigRepository
	gate   cycle.Gate
	now    func() time.Time
	newID  func() string
}

var _ INominationUseCase = (*NominationUseCase)(nil)

func NewNominationUseCase(repo interfaces.INominationRepository, cycles interfaces.ICycleConfigRepository, gate cycle.Gate) *NominationUseCase {
	return &NominationUseCase{repo: repo, cycles: cycles, gate: gate, now: time.Now, newID: uuid.NewString}
}

func (u *NominationUseCase) Submit(ctx context.Context, p entities.Principal, in NominationInput) (entities.Nomination, error) {
	log.Printf("[nomination][usecase] submit start nominator=%s manager=%t", p.Registration, p.IsManager)
	if !p.IsManager && !p.Role.HasAdminOverride() {
		return entities.Nomination{}, ErrRoleNotAllowed
	}
	in = in.normalized()
	if err := in.validate(); err != nil {
		return entities.Nomination{}, err
	}

	cfg, err := loadActiveCycle(ctx, u.cycles, entities.ProgramSangueVerde)
	if err != nil {
		return entities.Nomination{}, err
	}
	now := u.now()
	if !u.gate.IsSubmissionAllowed(p.Role, cfg, now) {
		log.Printf("[nomination][usecase] submission closed nominator=%s cycle=%s", p.Registration, cfg.ID)
		return entities.Nomination{}, ErrSubmissionClosed
	}

	n := entities.Nomination{
		ID:               u.newID(),
		NomineeName:      in.NomineeName,
		Registration:     in.Registration,
		CostCenter:       in.CostCenter,
		AdmissionDate:    in.AdmissionDate,
		SelectedValues:   in.SelectedValues,
		Justification:    in.Justification,
		ProfilePhoto:     in.ProfilePhoto,
		ValidationVideos: in.ValidationVideos,
		NominatorName:    p.Name,
		NominatorID:      p.Registration,
		Year:             cfg.Year,
		Quarter:          cfg.Quarter,
		DateSubmitted:    cycle.FormatDate(now, u.gate.Location),
	}
	created, err := u.repo.Create(ctx, n)
	if err != nil {
		log.Printf("[nomination][usecase] create failed id=%s err=%v", n.ID, err)
		return entities.Nomination{}, persistenceError("create nomination", err)
	}
	log.Printf("[nomination][usecase] submitted id=%s values=%s", created.ID, strings.Join(created.SelectedValues, ","))
	return created, nil
}

func (u *NominationUseCase) List(ctx context.Context, p entities.Principal) ([]entities.Nomination, error) {
	if !p.Role.Valid() {
		return nil, ErrRoleNotAllowed
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceError("list nominations", err)
	}
	sortNominationsNewestFirst(all)
	return all, nil
}

func sortNominationsNewestFirst(ns []entities.Nomination) {
	slices.SortStableFunc(ns, func(a, b entities.Nomination) int {
		return strings.Compare(b.DateSubmitted, a.DateSubmitted)
	})
}

func (u *NominationUseCase) Values() []entities.CultureValue {
	return slices.Clone(entities.CultureValues)
}
