package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"interlab/internal/domain/entities"
	mock_interfaces "interlab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validNomination() NominationInput {
	return NominationInput{
		NomineeName:    "Fernanda Alves",
		Registration:   "5555",
		CostCenter:     "CC-100",
		SelectedValues: []string{"dono", "TIME", "dono"},
		Justification:  "Liderou a parada de manutenção sem acidentes",
		ProfilePhoto:   "photos/5555.jpg",
	}
}

func TestNominationUseCase_Submit(t *testing.T) {
	manager := entities.Principal{Registration: "8008", Name: "Gestor", Role: entities.RoleColaborador, IsManager: true}

	t.Run("non manager", func(t *testing.T) {
		uc := NewNominationUseCase(nil, nil, testGate)
		_, err := uc.Submit(context.Background(), comite, validNomination())
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewNominationUseCase(nil, nil, testGate)
		cases := []struct {
			name   string
			mutate func(*NominationInput)
			want   error
		}{
			{"no values", func(in *NominationInput) { in.SelectedValues = []string{" "} }, ErrNominationFieldRequired},
			{"unknown value", func(in *NominationInput) { in.SelectedValues = []string{"VELOCIDADE"} }, ErrUnknownCultureValue},
			{"no photo", func(in *NominationInput) { in.ProfilePhoto = "" }, ErrNominationFieldRequired},
			{"no justification", func(in *NominationInput) { in.Justification = " " }, ErrNominationFieldRequired},
			{"no nominee", func(in *NominationInput) { in.NomineeName = "" }, ErrNominationFieldRequired},
		}
		for _, tc := range cases {
			in := validNomination()
			tc.mutate(&in)
			_, err := uc.Submit(context.Background(), manager, in)
			if !errors.Is(err, tc.want) || !errors.Is(err, ErrValidation) {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
			}
		}
	})

	t.Run("window closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINominationRepository(ctrl)
		cycles := mock_interfaces.NewMockICycleConfigRepository(ctrl)
		uc := NewNominationUseCase(repo, cycles, testGate)
		uc.now = at(2026, time.January, 31)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_sangue").Return(entities.CycleConfig{}, nil)

		_, err := uc.Submit(context.Background(), manager, validNomination())
		if !errors.Is(err, ErrSubmissionClosed) {
			t.Fatalf("expected ErrSubmissionClosed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINominationRepository(ctrl)
		cycles := mock_interfaces.NewMockICycleConfigRepository(ctrl)
		uc := NewNominationUseCase(repo, cycles, testGate)
		uc.now = at(2026, time.January, 30)
		uc.newID = func() string { return "nom-1" }

		cycles.EXPECT().GetByID(gomock.Any(), "atual_sangue").Return(storedCycle(entities.ProgramSangueVerde), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Nomination) (entities.Nomination, error) {
			if n.ID != "nom-1" || n.NominatorID != "8008" || n.NominatorName != "Gestor" {
				t.Fatalf("unexpected nominator: %+v", n)
			}
			if len(n.SelectedValues) != 2 || n.SelectedValues[0] != "DONO" || n.SelectedValues[1] != "TIME" {
				t.Fatalf("expected normalized values: %+v", n.SelectedValues)
			}
			if n.Year != 2026 || n.Quarter != 1 || n.DateSubmitted != "2026-01-30" || n.Votes != 0 {
				t.Fatalf("unexpected cycle fields: %+v", n)
			}
			return n, nil
		})

		if _, err := uc.Submit(context.Background(), manager, validNomination()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNominationUseCase_ListAndValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINominationRepository(ctrl)
	uc := NewNominationUseCase(repo, nil, testGate)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Nomination{
		{ID: "a", DateSubmitted: "2026-01-06"},
		{ID: "b", DateSubmitted: "2026-01-20"},
	}, nil)

	got, err := uc.List(context.Background(), colaborador)
	if err != nil || len(got) != 2 || got[0].ID != "b" {
		t.Fatalf("unexpected list: %+v %v", got, err)
	}

	values := uc.Values()
	if len(values) != 7 || values[0].ID != "DONO" {
		t.Fatalf("unexpected values: %+v", values)
	}
}
