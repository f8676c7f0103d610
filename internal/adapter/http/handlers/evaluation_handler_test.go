package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"interlab/internal/adapter/http/handlers/mocks"
	"interlab/internal/domain/entities"
	"interlab/internal/domain/evaluation"
	"interlab/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestEvaluationHandler_Evaluate(t *testing.T) {
	t.Run("missing type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewEvaluationHandler(mocks.NewMockIEvaluationUseCase(ctrl))

		r := newRouter(comite)
		r.POST("/v1/ideas/:id/evaluation", h.Evaluate)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/evaluation", `{"ratings":{"GRAU_INOVACAO":3}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain rule errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code string
		}{
			{fmt.Errorf("%w: %w", usecase.ErrValidation, evaluation.ErrJustificationRequired), "JUSTIFICATION_REQUIRED"},
			{fmt.Errorf("%w: %w", usecase.ErrValidation, evaluation.ErrRatingOutOfRange), "INVALID_RATINGS"},
			{fmt.Errorf("%w: %w", usecase.ErrValidation, evaluation.ErrRelevanceOutOfRange), "INVALID_RELEVANCE"},
			{fmt.Errorf("%w: %w", usecase.ErrValidation, evaluation.ErrInvalidEvaluationType), "INVALID_EVALUATION_TYPE"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEvaluationUseCase(ctrl)
			h := NewEvaluationHandler(uc)

			r := newRouter(comite)
			r.POST("/v1/ideas/:id/evaluation", h.Evaluate)

			uc.EXPECT().Evaluate(gomock.Any(), comite, "idea-1", gomock.Any()).Return(entities.Idea{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/evaluation", `{"type":"NAO_APLICAVEL"}`)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", tc.code, w.Code)
			}
			if code := errorCode(t, w); code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, code)
			}
			ctrl.Finish()
		}
	})

	t.Run("not an evaluator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		r := newRouter(colaborador)
		r.POST("/v1/ideas/:id/evaluation", h.Evaluate)

		uc.EXPECT().Evaluate(gomock.Any(), colaborador, "idea-1", gomock.Any()).Return(entities.Idea{}, usecase.ErrRoleNotAllowed)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/evaluation", `{"type":"NAO_APLICAVEL","justification":"x"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("innovative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEvaluationUseCase(ctrl)
		h := NewEvaluationHandler(uc)

		r := newRouter(comite)
		r.POST("/v1/ideas/:id/evaluation", h.Evaluate)

		want := usecase.EvaluationInput{
			Type:    entities.ClassificationInnovative,
			Ratings: map[string]int{"GRAU_INOVACAO": 3, "INVESTIMENTO": 1},
		}
		uc.EXPECT().Evaluate(gomock.Any(), comite, "idea-1", want).Return(entities.Idea{
			ID:             "idea-1",
			Classification: entities.ClassificationInnovative,
			FinalScore:     2.6,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/ideas/idea-1/evaluation", `{"type":"inovadora","ratings":{"GRAU_INOVACAO":3,"INVESTIMENTO":1}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final_type"] != "INOVADORA" || body["final_score"] != 2.6 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestEvaluationHandler_PendingAndCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEvaluationUseCase(ctrl)
	h := NewEvaluationHandler(uc)

	r := newRouter(comite)
	r.GET("/v1/evaluations/pending", h.PendingQueue)
	r.GET("/v1/evaluations/criteria", h.Criteria)

	uc.EXPECT().PendingQueue(gomock.Any(), comite).Return([]entities.Idea{{ID: "p1"}}, nil)
	uc.EXPECT().Criteria().Return(evaluation.Criteria)

	w := doJSON(r, http.MethodGet, "/v1/evaluations/pending", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/v1/evaluations/criteria", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		TotalWeight int `json:"total_weight"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.TotalWeight != 19 {
		t.Fatalf("unexpected criteria body %s", w.Body.String())
	}
}
