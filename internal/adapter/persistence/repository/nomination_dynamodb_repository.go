package repository

import (
	"context"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultNominationsTableName = "nominations"

type nominationItem struct {
	ID               string   `dynamodbav:"id"`
	NomineeName      string   `dynamodbav:"nominee_name"`
	Registration     string   `dynamodbav:"registration"`
	CostCenter       string   `dynamodbav:"cost_center"`
	AdmissionDate    string   `dynamodbav:"admission_date"`
	SelectedValues   []string `dynamodbav:"selected_values"`
	Justification    string   `dynamodbav:"justification"`
	ProfilePhoto     string   `dynamodbav:"profile_photo"`
	ValidationVideos []string `dynamodbav:"validation_videos"`
	NominatorName    string   `dynamodbav:"nominator_name"`
	NominatorID      string   `dynamodbav:"nominator_id"`
	Year             int      `dynamodbav:"year"`
	Quarter          int      `dynamodbav:"quarter"`
	DateSubmitted    string   `dynamodbav:"date_submitted"`
	Votes            int      `dynamodbav:"votes"`
}

// NominationDynamoRepository persists Sangue Verde nominations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type NominationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INominationRepository = (*NominationDynamoRepository)(nil)

func NewNominationDynamoRepository(ddb DynamoDBAPI) *NominationDynamoRepository {
	return &NominationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOMINATIONS_TABLE", defaultNominationsTableName),
	}
}

func (r *NominationDynamoRepository) TableName() string {
	return r.tableName
}

func (r *NominationDynamoRepository) Create(ctx context.Context, n entities.Nomination) (entities.Nomination, error) {
	av, err := attributevalue.MarshalMap(toNominationItem(n))
	if err != nil {
		return entities.Nomination{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Nomination{}, err
	}
	return n, nil
}

func (r *NominationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Nomination, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Nomination{}, err
	}
	return decodeNomination(item)
}

func (r *NominationDynamoRepository) List(ctx context.Context) ([]entities.Nomination, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var its []nominationItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Nomination, 0, len(its))
	for _, it := range its {
		out = append(out, fromNominationItem(it))
	}
	return out, nil
}

func (r *NominationDynamoRepository) IncrementVotes(ctx context.Context, id string) (int, error) {
	return incrementVotes(ctx, r.ddb, r.tableName, id)
}

func decodeNomination(av map[string]types.AttributeValue) (entities.Nomination, error) {
	if len(av) == 0 {
		return entities.Nomination{}, nil
	}
	var it nominationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Nomination{}, err
	}
	return fromNominationItem(it), nil
}

func toNominationItem(n entities.Nomination) nominationItem {
	return nominationItem{
		ID:               n.ID,
		NomineeName:      n.NomineeName,
		Registration:     n.Registration,
		CostCenter:       n.CostCenter,
		AdmissionDate:    n.AdmissionDate,
		SelectedValues:   nonNilStrings(n.SelectedValues),
		Justification:    n.Justification,
		ProfilePhoto:     n.ProfilePhoto,
		ValidationVideos: nonNilStrings(n.ValidationVideos),
		NominatorName:    n.NominatorName,
		NominatorID:      n.NominatorID,
		Year:             n.Year,
		Quarter:          n.Quarter,
		DateSubmitted:    n.DateSubmitted,
		Votes:            n.Votes,
	}
}

func fromNominationItem(it nominationItem) entities.Nomination {
	return entities.Nomination{
		ID:               it.ID,
		NomineeName:      it.NomineeName,
		Registration:     it.Registration,
		CostCenter:       it.CostCenter,
		AdmissionDate:    it.AdmissionDate,
		SelectedValues:   it.SelectedValues,
		Justification:    it.Justification,
		ProfilePhoto:     it.ProfilePhoto,
		ValidationVideos: it.ValidationVideos,
		NominatorName:    it.NominatorName,
		NominatorID:      it.NominatorID,
		Year:             it.Year,
		Quarter:          it.Quarter,
		DateSubmitted:    it.DateSubmitted,
		Votes:            it.Votes,
	}
}
