package repository

import (
	"context"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultCyclesTableName = "cycle_configs"

type cycleConfigItem struct {
	ID              string `dynamodbav:"id"`
	Program         string `dynamodbav:"program"`
	Year            int    `dynamodbav:"year"`
	Quarter         int    `dynamodbav:"quarter"`
	SubmissionStart string `dynamodbav:"submission_start"`
	SubmissionEnd   string `dynamodbav:"submission_end"`
	EvaluationStart string `dynamodbav:"evaluation_start"`
	EvaluationEnd   string `dynamodbav:"evaluation_end"`
	ResultsDate     string `dynamodbav:"results_date"`
	IsPublished     bool   `dynamodbav:"is_published"`
	Phase           string `dynamodbav:"phase,omitempty"`
	VideoStorageURL string `dynamodbav:"video_storage_url,omitempty"`
}

// CycleConfigDynamoRepository reads program calendars from DynamoDB.
//
// Table requirements:
//   - PK: id (string). Holds both the per-quarter history
//     ("IDEIAS_2026_Q1") and the active pointers ("atual_ideias", "atual_sangue").
type CycleConfigDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICycleConfigRepository = (*CycleConfigDynamoRepository)(nil)

func NewCycleConfigDynamoRepository(ddb DynamoDBAPI) *CycleConfigDynamoRepository {
	return &CycleConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CYCLES_TABLE", defaultCyclesTableName),
	}
}

func (r *CycleConfigDynamoRepository) TableName() string {
	return r.tableName
}

func (r *CycleConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.CycleConfig, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.CycleConfig{}, err
	}
	if len(item) == 0 {
		return entities.CycleConfig{}, nil
	}
	var it cycleConfigItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.CycleConfig{}, err
	}
	return fromCycleConfigItem(it), nil
}

func fromCycleConfigItem(it cycleConfigItem) entities.CycleConfig {
	return entities.CycleConfig{
		ID:              it.ID,
		Program:         entities.ProgramType(it.Program),
		Year:            it.Year,
		Quarter:         it.Quarter,
		SubmissionStart: it.SubmissionStart,
		SubmissionEnd:   it.SubmissionEnd,
		EvaluationStart: it.EvaluationStart,
		EvaluationEnd:   it.EvaluationEnd,
		ResultsDate:     it.ResultsDate,
		IsPublished:     it.IsPublished,
		Phase:           entities.CyclePhase(it.Phase),
		VideoStorageURL: it.VideoStorageURL,
	}
}
