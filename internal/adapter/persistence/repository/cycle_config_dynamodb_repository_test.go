package repository

import (
	"context"
	"testing"

	"interlab/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

func TestCycleConfigDynamoRepository_GetByID(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewCycleConfigDynamoRepository(ddb)

	got, err := repo.GetByID(context.Background(), "atual_ideias")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero config, got %+v %v", got, err)
	}

	item, err := attributevalue.MarshalMap(cycleConfigItem{
		ID:              "atual_ideias",
		Program:         "IDEIAS",
		Year:            2026,
		Quarter:         2,
		SubmissionStart: "2026-04-06",
		SubmissionEnd:   "2026-04-30",
		IsPublished:     true,
		Phase:           "VOTACAO_FINAL",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	ddb.items["cycle_configs/atual_ideias"] = item

	got, err = repo.GetByID(context.Background(), "atual_ideias")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Program != entities.ProgramIdeas || got.Quarter != 2 || !got.IsPublished || got.Phase != entities.PhaseFinalVoting {
		t.Fatalf("unexpected config: %+v", got)
	}
}
