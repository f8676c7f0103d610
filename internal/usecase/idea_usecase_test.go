package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"interlab/internal/domain/entities"
	mock_interfaces "interlab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newIdeaUseCase(t *testing.T) (*IdeaUseCase, *mock_interfaces.MockIIdeaRepository, *mock_interfaces.MockICycleConfigRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIIdeaRepository(ctrl)
	cycles := mock_interfaces.NewMockICycleConfigRepository(ctrl)
	uc := NewIdeaUseCase(repo, cycles, testGate)
	uc.now = at(2026, time.January, 15)
	uc.newID = func() string { return "idea-1" }
	return uc, repo, cycles
}

func validIdeaInput() IdeaInput {
	return IdeaInput{
		FullName:  " Ana Souza ",
		GreenBelt: "Bruno Lima",
		Sector:    "Laminação",
		Problem:   "Perda de bobinas no resfriamento",
		Proposal:  "Instalar sensores de temperatura na linha 2",
	}
}

func TestIdeaTitle(t *testing.T) {
	if got := IdeaTitle("curta"); got != "curta" {
		t.Fatalf("unexpected title %q", got)
	}
	exact := strings.Repeat("a", 50)
	if got := IdeaTitle(exact); got != exact {
		t.Fatalf("expected untouched 50 chars, got %q", got)
	}
	long := strings.Repeat("ç", 60)
	got := IdeaTitle(long)
	if got != strings.Repeat("ç", 50)+"..." {
		t.Fatalf("expected rune-safe truncation, got %q", got)
	}
}

func TestIdeaUseCase_Submit(t *testing.T) {
	t.Run("role not allowed", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.Submit(context.Background(), comite, validIdeaInput())
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		for _, mutate := range []func(*IdeaInput){
			func(in *IdeaInput) { in.Problem = "  " },
			func(in *IdeaInput) { in.Proposal = "" },
			func(in *IdeaInput) { in.GreenBelt = "" },
		} {
			in := validIdeaInput()
			mutate(&in)
			_, err := uc.Submit(context.Background(), colaborador, in)
			if !errors.Is(err, ErrIdeaFieldRequired) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrIdeaFieldRequired, got %v", err)
			}
		}
	})

	t.Run("window closed", func(t *testing.T) {
		uc, _, cycles := newIdeaUseCase(t)
		uc.now = at(2026, time.February, 1)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)

		_, err := uc.Submit(context.Background(), colaborador, validIdeaInput())
		if !errors.Is(err, ErrSubmissionClosed) || !errors.Is(err, ErrWindowClosed) {
			t.Fatalf("expected ErrSubmissionClosed, got %v", err)
		}
	})

	t.Run("admin bypasses the window", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		uc.now = at(2026, time.March, 20)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i entities.Idea) (entities.Idea, error) {
			return i, nil
		})

		idea, err := uc.Submit(context.Background(), admin, validIdeaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idea.DateSubmitted != "2026-03-20" {
			t.Fatalf("unexpected date: %s", idea.DateSubmitted)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Idea{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), colaborador, validIdeaInput())
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Idea{})).DoAndReturn(
			func(_ context.Context, i entities.Idea) (entities.Idea, error) {
				if i.ID != "idea-1" || i.AuthorID != "1001" || i.Author != "Ana Souza" || i.Registration != "1001" {
					t.Fatalf("unexpected identity: %+v", i)
				}
				if i.Classification != entities.ClassificationPending || i.FinalScore != 0 || i.Votes != 0 {
					t.Fatalf("expected pending idea: %+v", i)
				}
				if i.DateSubmitted != "2026-01-15" || i.Cycle != 1 || i.Year != 2026 {
					t.Fatalf("unexpected cycle data: %+v", i)
				}
				if i.Title != "Instalar sensores de temperatura na linha 2" || i.Area != "Laminação" {
					t.Fatalf("unexpected derived fields: %+v", i)
				}
				if i.Evaluations == nil || i.Feedbacks == nil {
					t.Fatalf("expected empty lists, got nil")
				}
				return i, nil
			},
		)

		idea, err := uc.Submit(context.Background(), colaborador, validIdeaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idea.ID != "idea-1" {
			t.Fatalf("unexpected id %q", idea.ID)
		}
	})
}

func TestIdeaUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.Get(context.Background(), colaborador, " ")
		if !errors.Is(err, ErrInvalidIdeaID) {
			t.Fatalf("expected ErrInvalidIdeaID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Idea{}, nil)
		_, err := uc.Get(context.Background(), comite, "x")
		if !errors.Is(err, ErrIdeaNotFound) {
			t.Fatalf("expected ErrIdeaNotFound, got %v", err)
		}
	})

	t.Run("colaborador cannot read others ideas", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Idea{ID: "x", AuthorID: "7777"}, nil)
		_, err := uc.Get(context.Background(), colaborador, "x")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("management reads any idea", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Idea{ID: "x", AuthorID: "7777"}, nil)
		idea, err := uc.Get(context.Background(), comite, "x")
		if err != nil || idea.ID != "x" {
			t.Fatalf("unexpected result: %+v %v", idea, err)
		}
	})
}

func TestIdeaUseCase_List(t *testing.T) {
	ideas := []entities.Idea{
		{ID: "a", AuthorID: "1001", Author: "Ana Souza", Title: "Sensor", Problem: "perda", Area: "Laminação", DateSubmitted: "2026-01-10", Classification: entities.ClassificationPending},
		{ID: "b", AuthorID: "7777", Author: "Eva", Title: "Esteira", Problem: "atraso", Area: "Logística", DateSubmitted: "2026-01-20", Classification: entities.ClassificationInnovative},
		{ID: "c", AuthorID: "1001", Author: "Ana Souza", Title: "Painel", Problem: "Consumo de energia alto", Area: "Utilidades", DateSubmitted: "2026-01-12", Classification: entities.ClassificationInnovative},
	}

	cases := []struct {
		name   string
		p      entities.Principal
		filter IdeaFilter
		want   []string
	}{
		{name: "colaborador sees own newest first", p: colaborador, want: []string{"c", "a"}},
		{name: "management sees all", p: comite, want: []string{"b", "c", "a"}},
		{name: "classification filter", p: comite, filter: IdeaFilter{Classification: entities.ClassificationInnovative}, want: []string{"b", "c"}},
		{name: "area filter", p: comite, filter: IdeaFilter{Area: "logística"}, want: []string{"b"}},
		{name: "search over problem", p: comite, filter: IdeaFilter{Search: "ENERGIA"}, want: []string{"c"}},
		{name: "search over author", p: comite, filter: IdeaFilter{Search: "eva"}, want: []string{"b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, _ := newIdeaUseCase(t)
			repo.EXPECT().List(gomock.Any()).Return(append([]entities.Idea(nil), ideas...), nil)

			got, err := uc.List(context.Background(), tc.p, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %v, got %+v", tc.want, got)
				}
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		_, err := uc.List(context.Background(), comite, IdeaFilter{})
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestIdeaUseCase_Edit(t *testing.T) {
	own := entities.Idea{ID: "idea-1", AuthorID: "1001", Classification: entities.ClassificationPending, Votes: 2}

	t.Run("not the author", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(own, nil)
		_, err := uc.Edit(context.Background(), greenBelt, "idea-1", validIdeaInput())
		if !errors.Is(err, ErrNotIdeaAuthor) {
			t.Fatalf("expected ErrNotIdeaAuthor, got %v", err)
		}
	})

	t.Run("window closed", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		uc.now = at(2026, time.February, 2)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(own, nil)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		_, err := uc.Edit(context.Background(), colaborador, "idea-1", validIdeaInput())
		if !errors.Is(err, ErrSubmissionClosed) {
			t.Fatalf("expected ErrSubmissionClosed, got %v", err)
		}
	})

	t.Run("success keeps votes and recomputes title", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(own, nil)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		in := validIdeaInput()
		in.Proposal = strings.Repeat("x", 80)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i entities.Idea) (entities.Idea, error) {
			if i.Votes != 2 || i.Classification != entities.ClassificationPending {
				t.Fatalf("expected untouched workflow fields: %+v", i)
			}
			if i.Title != strings.Repeat("x", 50)+"..." {
				t.Fatalf("unexpected title %q", i.Title)
			}
			return i, nil
		})

		if _, err := uc.Edit(context.Background(), colaborador, "idea-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(own, nil)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)
		repo.EXPECT().UpdateContent(gomock.Any(), gomock.Any()).Return(entities.Idea{}, nil)
		_, err := uc.Edit(context.Background(), colaborador, "idea-1", validIdeaInput())
		if !errors.Is(err, ErrIdeaNotFound) {
			t.Fatalf("expected ErrIdeaNotFound, got %v", err)
		}
	})
}

func TestIdeaUseCase_AddFeedback(t *testing.T) {
	t.Run("colaborador cannot comment", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.AddFeedback(context.Background(), colaborador, "idea-1", "ok")
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.AddFeedback(context.Background(), comite, "idea-1", "   ")
		if !errors.Is(err, ErrEmptyFeedback) {
			t.Fatalf("expected ErrEmptyFeedback, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().AppendFeedback(gomock.Any(), "idea-1", gomock.Any()).Return(entities.Idea{}, nil)
		_, err := uc.AddFeedback(context.Background(), comite, "idea-1", "bom")
		if !errors.Is(err, ErrIdeaNotFound) {
			t.Fatalf("expected ErrIdeaNotFound, got %v", err)
		}
	})

	t.Run("appends trimmed feedback", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().AppendFeedback(gomock.Any(), "idea-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, fb entities.Feedback) (entities.Idea, error) {
				if fb.User != "Carla Dias" || fb.Text != "Detalhar custos" || fb.Date.IsZero() {
					t.Fatalf("unexpected feedback: %+v", fb)
				}
				return entities.Idea{ID: id, Feedbacks: []entities.Feedback{fb}}, nil
			},
		)
		idea, err := uc.AddFeedback(context.Background(), comite, " idea-1 ", "  Detalhar custos ")
		if err != nil || len(idea.Feedbacks) != 1 {
			t.Fatalf("unexpected result: %+v %v", idea, err)
		}
	})
}

func TestIdeaUseCase_UpdateImplementation(t *testing.T) {
	innovative := entities.Idea{ID: "idea-1", Classification: entities.ClassificationInnovative}

	t.Run("role not allowed", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.UpdateImplementation(context.Background(), comite, "idea-1", entities.ImplementationDone, "")
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewIdeaUseCase(nil, nil, testGate)
		_, err := uc.UpdateImplementation(context.Background(), agente, "idea-1", "PAUSADO", "")
		if !errors.Is(err, ErrInvalidImplementationStatus) {
			t.Fatalf("expected ErrInvalidImplementationStatus, got %v", err)
		}
	})

	t.Run("only innovative ideas", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(entities.Idea{ID: "idea-1", Classification: entities.ClassificationNotApplicable}, nil)
		_, err := uc.UpdateImplementation(context.Background(), agente, "idea-1", entities.ImplementationInProgress, "")
		if !errors.Is(err, ErrIdeaNotInnovative) {
			t.Fatalf("expected ErrIdeaNotInnovative, got %v", err)
		}
	})

	t.Run("defaults the agent to the caller", func(t *testing.T) {
		uc, repo, _ := newIdeaUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "idea-1").Return(innovative, nil)
		repo.EXPECT().UpdateImplementation(gomock.Any(), "idea-1", entities.ImplementationInProgress, "Davi Rocha").
			Return(entities.Idea{ID: "idea-1", ImplementationStatus: entities.ImplementationInProgress}, nil)
		idea, err := uc.UpdateImplementation(context.Background(), agente, "idea-1", entities.ImplementationInProgress, " ")
		if err != nil || idea.ImplementationStatus != entities.ImplementationInProgress {
			t.Fatalf("unexpected result: %+v %v", idea, err)
		}
	})
}

func TestIdeaUseCase_ImplementationBoard(t *testing.T) {
	uc, repo, _ := newIdeaUseCase(t)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Idea{
		{ID: "a", Classification: entities.ClassificationInnovative},
		{ID: "b", Classification: entities.ClassificationInnovative, ImplementationStatus: entities.ImplementationDone},
		{ID: "c", Classification: entities.ClassificationPending},
		{ID: "d", Classification: entities.ClassificationInnovative, ImplementationStatus: entities.ImplementationPlanning},
	}, nil)

	board, err := uc.ImplementationBoard(context.Background(), colaborador)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(board.Columns))
	}
	if board.Columns[0].Status != entities.ImplementationPlanning || len(board.Columns[0].Ideas) != 2 {
		t.Fatalf("unexpected planning column: %+v", board.Columns[0])
	}
	if len(board.Columns[1].Ideas) != 0 || board.Columns[1].Ideas == nil {
		t.Fatalf("expected empty in-progress column: %+v", board.Columns[1])
	}
	if len(board.Columns[2].Ideas) != 1 || board.Columns[2].Ideas[0].ID != "b" {
		t.Fatalf("unexpected done column: %+v", board.Columns[2])
	}
}

func TestIdeaUseCase_Dashboard(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 2, d, 10, 0, 0, 0, time.UTC) }
	ideas := []entities.Idea{
		{ID: "a", AuthorID: "1001", Author: "Ana Souza", Classification: entities.ClassificationInnovative, Votes: 3, ImplementationStatus: entities.ImplementationDone,
			Feedbacks: []entities.Feedback{{User: "Carla Dias", Text: "1", Date: day(1)}, {User: "Carla Dias", Text: "2", Date: day(7)}}},
		{ID: "b", AuthorID: "7777", Classification: entities.ClassificationInnovative, Votes: 9,
			Feedbacks: []entities.Feedback{{User: "Carla Dias", Text: "3", Date: day(3)}, {User: "Outro", Text: "x", Date: day(9)}}},
		{ID: "c", AuthorID: "1001", Classification: entities.ClassificationPending,
			Feedbacks: []entities.Feedback{{User: "Carla Dias", Text: "4", Date: day(2)}, {User: "Carla Dias", Text: "5", Date: day(4)}, {User: "Carla Dias", Text: "6", Date: day(5)}}},
	}

	t.Run("colaborador before publication", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return(ideas, nil)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)

		d, err := uc.Dashboard(context.Background(), colaborador)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := DashboardStats{Total: 2, Pending: 1, Innovative: 1, Implemented: 1}
		if d.Stats != want {
			t.Fatalf("expected %+v, got %+v", want, d.Stats)
		}
		if d.RankingVisible || len(d.Podium) != 0 {
			t.Fatalf("expected hidden podium: %+v", d)
		}
		if len(d.RecentFeedbacks) != 5 {
			t.Fatalf("expected 5 feedbacks, got %d", len(d.RecentFeedbacks))
		}
		if d.RecentFeedbacks[0].Feedback.Text != "2" || d.RecentFeedbacks[4].Feedback.Text != "1" {
			t.Fatalf("unexpected order: %+v", d.RecentFeedbacks)
		}
	})

	t.Run("management sees podium and own feedback", func(t *testing.T) {
		uc, repo, cycles := newIdeaUseCase(t)
		repo.EXPECT().List(gomock.Any()).Return(ideas, nil)
		cycles.EXPECT().GetByID(gomock.Any(), "atual_ideias").Return(storedCycle(entities.ProgramIdeas), nil)

		d, err := uc.Dashboard(context.Background(), comite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Stats.Total != 3 || !d.RankingVisible {
			t.Fatalf("unexpected dashboard: %+v", d)
		}
		if len(d.Podium) != 2 || d.Podium[0].ID != "b" {
			t.Fatalf("unexpected podium: %+v", d.Podium)
		}
		for _, fb := range d.RecentFeedbacks {
			if fb.Feedback.User != "Carla Dias" {
				t.Fatalf("unexpected feedback in activity: %+v", fb)
			}
		}
	})
}
