package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"interlab/internal/adapter/http/handlers/mocks"
	"interlab/internal/domain/entities"
	"interlab/internal/usecase"

	"go.uber.org/mock/gomock"
)

const ideaBody = `{"problem":"Perda de tampa","idea":"Ajustar guia","green_belt":"Bruno Lima","sector":"Envase"}`

func TestIdeaHandler_SubmitIdea(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewIdeaHandler(mocks.NewMockIIdeaUseCase(ctrl))

		r := newRouter(colaborador)
		r.POST("/v1/ideas", h.SubmitIdea)

		w := doJSON(r, http.MethodPost, "/v1/ideas", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewIdeaHandler(mocks.NewMockIIdeaUseCase(ctrl))

		r := newRouter(colaborador)
		r.POST("/v1/ideas", h.SubmitIdea)

		w := doJSON(r, http.MethodPost, "/v1/ideas", `{"problem":"x","idea":"y"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submission closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(colaborador)
		r.POST("/v1/ideas", h.SubmitIdea)

		uc.EXPECT().Submit(gomock.Any(), colaborador, gomock.Any()).Return(entities.Idea{}, usecase.ErrSubmissionClosed)

		w := doJSON(r, http.MethodPost, "/v1/ideas", ideaBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "SUBMISSION_CLOSED" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(colaborador)
		r.POST("/v1/ideas", h.SubmitIdea)

		uc.EXPECT().Submit(gomock.Any(), colaborador, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Principal, in usecase.IdeaInput) (entities.Idea, error) {
				if in.Proposal != "Ajustar guia" || in.GreenBelt != "Bruno Lima" || in.Sector != "Envase" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Idea{ID: "idea-1", Title: in.Proposal, Classification: entities.ClassificationPending}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/ideas", ideaBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "idea-1" || body["final_type"] != "PENDENTE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestIdeaHandler_ListIdeas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIIdeaUseCase(ctrl)
	h := NewIdeaHandler(uc)

	r := newRouter(comite)
	r.GET("/v1/ideas", h.ListIdeas)

	want := usecase.IdeaFilter{Search: "tampa", Classification: entities.ClassificationInnovative}
	uc.EXPECT().List(gomock.Any(), comite, want).Return([]entities.Idea{{ID: "a"}, {ID: "b"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/ideas?search=tampa&classification=inovadora", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
		t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
	}
}

func TestIdeaHandler_GetIdea(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", usecase.ErrIdeaNotFound, http.StatusNotFound},
		{"invalid id", usecase.ErrInvalidIdeaID, http.StatusBadRequest},
		{"store failure", fmt.Errorf("%w: get idea: %w", usecase.ErrPersistence, errors.New("boom")), http.StatusInternalServerError},
		{"ok", nil, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIIdeaUseCase(ctrl)
			h := NewIdeaHandler(uc)

			r := newRouter(colaborador)
			r.GET("/v1/ideas/:id", h.GetIdea)

			idea := entities.Idea{}
			if tc.err == nil {
				idea = entities.Idea{ID: "idea-1"}
			}
			uc.EXPECT().Get(gomock.Any(), colaborador, "idea-1").Return(idea, tc.err)

			w := doJSON(r, http.MethodGet, "/v1/ideas/idea-1", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestIdeaHandler_EditIdea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIIdeaUseCase(ctrl)
	h := NewIdeaHandler(uc)

	r := newRouter(comite)
	r.PUT("/v1/ideas/:id", h.EditIdea)

	uc.EXPECT().Edit(gomock.Any(), comite, "idea-1", gomock.Any()).Return(entities.Idea{}, usecase.ErrNotIdeaAuthor)

	w := doJSON(r, http.MethodPut, "/v1/ideas/idea-1", ideaBody)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "NOT_IDEA_AUTHOR" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestIdeaHandler_AddFeedback(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewIdeaHandler(mocks.NewMockIIdeaUseCase(ctrl))

		r := newRouter(comite)
		r.POST("/v1/ideas/:id/feedbacks", h.AddFeedback)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/feedbacks", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("colaborador forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(colaborador)
		r.POST("/v1/ideas/:id/feedbacks", h.AddFeedback)

		uc.EXPECT().AddFeedback(gomock.Any(), colaborador, "idea-1", "Bom").Return(entities.Idea{}, usecase.ErrRoleNotAllowed)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/feedbacks", `{"text":"Bom"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(comite)
		r.POST("/v1/ideas/:id/feedbacks", h.AddFeedback)

		uc.EXPECT().AddFeedback(gomock.Any(), comite, "idea-1", "Bom").Return(entities.Idea{
			ID:        "idea-1",
			Feedbacks: []entities.Feedback{{User: "Carla Dias", Text: "Bom"}},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/feedbacks", `{"text":"Bom"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestIdeaHandler_UpdateImplementation(t *testing.T) {
	t.Run("not innovative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(admin)
		r.PATCH("/v1/ideas/:id/implementation", h.UpdateImplementation)

		uc.EXPECT().UpdateImplementation(gomock.Any(), admin, "idea-1", entities.ImplementationDone, "").Return(entities.Idea{}, usecase.ErrIdeaNotInnovative)

		w := doJSON(r, http.MethodPatch, "/v1/ideas/idea-1/implementation", `{"status":"concluido"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "IDEA_NOT_INNOVATIVE" {
			t.Fatalf("unexpected code %q", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIdeaUseCase(ctrl)
		h := NewIdeaHandler(uc)

		r := newRouter(admin)
		r.PATCH("/v1/ideas/:id/implementation", h.UpdateImplementation)

		uc.EXPECT().UpdateImplementation(gomock.Any(), admin, "idea-1", entities.ImplementationInProgress, "Davi Rocha").Return(entities.Idea{
			ID:                   "idea-1",
			Classification:       entities.ClassificationInnovative,
			ImplementationStatus: entities.ImplementationInProgress,
		}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/ideas/idea-1/implementation", `{"status":"EM_EXECUCAO","agent":"Davi Rocha"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["implementation_status"] != "EM_EXECUCAO" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestIdeaHandler_BoardAndDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIIdeaUseCase(ctrl)
	h := NewIdeaHandler(uc)

	r := newRouter(comite)
	r.GET("/v1/implementation", h.ImplementationBoard)
	r.GET("/v1/dashboard", h.Dashboard)

	uc.EXPECT().ImplementationBoard(gomock.Any(), comite).Return(usecase.ImplementationBoard{Columns: []usecase.ImplementationColumn{
		{Status: entities.ImplementationPlanning, Ideas: []entities.Idea{{ID: "a"}}},
	}}, nil)
	uc.EXPECT().Dashboard(gomock.Any(), comite).Return(usecase.Dashboard{Stats: usecase.DashboardStats{Total: 3}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/implementation", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Stats struct {
			Total int `json:"total"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Stats.Total != 3 {
		t.Fatalf("unexpected dashboard %s err=%v", w.Body.String(), err)
	}
}
