package repository

import (
	"context"
	"fmt"
	"strconv"

	"interlab/internal/domain/entities"
	"interlab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultIdeasTableName = "ideas"

type criterionScoreItem struct {
	CriterionID string `dynamodbav:"criterion_id"`
	Score       int    `dynamodbav:"score"`
}

type evaluationItem struct {
	EvaluatorID    string               `dynamodbav:"evaluator_id"`
	Type           string               `dynamodbav:"type"`
	Date           string               `dynamodbav:"date"`
	Scores         []criterionScoreItem `dynamodbav:"scores,omitempty"`
	RelevanceScore int                  `dynamodbav:"relevance_score,omitempty"`
	Justification  string               `dynamodbav:"justification,omitempty"`
}

type feedbackItem struct {
	User string `dynamodbav:"user"`
	Text string `dynamodbav:"text"`
	Date string `dynamodbav:"date"`
}

type ideaItem struct {
	ID                    string   `dynamodbav:"id"`
	Registration          string   `dynamodbav:"registration"`
	FullName              string   `dynamodbav:"fullname"`
	Nickname              string   `dynamodbav:"nickname"`
	Phone                 string   `dynamodbav:"phone"`
	Email                 string   `dynamodbav:"email"`
	GreenBelt             string   `dynamodbav:"green_belt"`
	Sector                string   `dynamodbav:"sector"`
	IdeaDate              string   `dynamodbav:"idea_date"`
	Category              string   `dynamodbav:"category"`
	Location              string   `dynamodbav:"location"`
	Problem               string   `dynamodbav:"problem"`
	Proposal              string   `dynamodbav:"idea"`
	ImplementationDetails string   `dynamodbav:"implementation_details"`
	Investment            string   `dynamodbav:"investment"`
	FinancialReturn       string   `dynamodbav:"financial_return"`
	Manager               string   `dynamodbav:"manager"`
	SelectedCriteria      []string `dynamodbav:"selected_criteria"`
	ProfilePhoto          string   `dynamodbav:"profile_photo"`
	VideoURL              string   `dynamodbav:"video_url"`

	Title         string `dynamodbav:"title"`
	Author        string `dynamodbav:"author"`
	AuthorID      string `dynamodbav:"author_id"`
	Area          string `dynamodbav:"area"`
	DateSubmitted string `dynamodbav:"date_submitted"`
	Cycle         int    `dynamodbav:"cycle"`
	Year          int    `dynamodbav:"year"`

	FinalType   string           `dynamodbav:"final_type"`
	Evaluations []evaluationItem `dynamodbav:"evaluations"`
	FinalScore  float64          `dynamodbav:"final_score"`
	Votes       int              `dynamodbav:"votes"`

	ImplementationStatus string `dynamodbav:"implementation_status,omitempty"`
	ImplementationAgent  string `dynamodbav:"implementation_agent,omitempty"`

	Feedbacks []feedbackItem `dynamodbav:"feedbacks"`
}

// contentAttributes are the attributes an author may rewrite while the
// submission window is open. Workflow state (classification, votes,
// feedback) is never touched by a content update.
var contentAttributes = []string{
	"registration", "fullname", "nickname", "phone", "email", "green_belt", "sector",
	"idea_date", "category", "location", "problem", "idea", "implementation_details",
	"investment", "financial_return", "manager", "selected_criteria", "profile_photo",
	"video_url", "title", "author", "area",
}

// IdeaDynamoRepository persists Idea entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Votes are a number attribute incremented with ADD, so concurrent sessions
// never lose an increment. Feedback is appended with list_append.
type IdeaDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IIdeaRepository = (*IdeaDynamoRepository)(nil)

func NewIdeaDynamoRepository(ddb DynamoDBAPI) *IdeaDynamoRepository {
	return &IdeaDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("IDEAS_TABLE", defaultIdeasTableName),
	}
}

func (r *IdeaDynamoRepository) TableName() string {
	return r.tableName
}

func (r *IdeaDynamoRepository) Create(ctx context.Context, idea entities.Idea) (entities.Idea, error) {
	av, err := attributevalue.MarshalMap(toIdeaItem(idea))
	if err != nil {
		return entities.Idea{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Idea{}, err
	}
	return idea, nil
}

func (r *IdeaDynamoRepository) GetByID(ctx context.Context, id string) (entities.Idea, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Idea{}, err
	}
	return decodeIdea(item)
}

func (r *IdeaDynamoRepository) List(ctx context.Context) ([]entities.Idea, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var its []ideaItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Idea, 0, len(its))
	for _, it := range its {
		out = append(out, fromIdeaItem(it))
	}
	return out, nil
}

func (r *IdeaDynamoRepository) UpdateContent(ctx context.Context, idea entities.Idea) (entities.Idea, error) {
	av, err := attributevalue.MarshalMap(toIdeaItem(idea))
	if err != nil {
		return entities.Idea{}, err
	}

	expr := "SET "
	names := make(map[string]string, len(contentAttributes))
	values := make(map[string]types.AttributeValue, len(contentAttributes))
	for i, attr := range contentAttributes {
		if i > 0 {
			expr += ", "
		}
		n, v := "#c"+strconv.Itoa(i), ":c"+strconv.Itoa(i)
		expr += n + " = " + v
		names[n] = attr
		values[v] = av[attr]
	}
	return r.update(ctx, idea.ID, expr, names, values)
}

// SaveEvaluation overwrites the classification, the evaluation list and the
// final score in a single write.
func (r *IdeaDynamoRepository) SaveEvaluation(ctx context.Context, idea entities.Idea) (entities.Idea, error) {
	it := toIdeaItem(idea)
	evals, err := attributevalue.Marshal(it.Evaluations)
	if err != nil {
		return entities.Idea{}, err
	}
	expr := "SET #final_type = :final_type, #evaluations = :evaluations, #final_score = :final_score"
	names := map[string]string{
		"#final_type":  "final_type",
		"#evaluations": "evaluations",
		"#final_score": "final_score",
	}
	values := map[string]types.AttributeValue{
		":final_type":  &types.AttributeValueMemberS{Value: it.FinalType},
		":evaluations": evals,
		":final_score": &types.AttributeValueMemberN{Value: strconv.FormatFloat(it.FinalScore, 'f', -1, 64)},
	}
	return r.update(ctx, idea.ID, expr, names, values)
}

func (r *IdeaDynamoRepository) AppendFeedback(ctx context.Context, id string, fb entities.Feedback) (entities.Idea, error) {
	entry, err := attributevalue.MarshalMap(toFeedbackItem(fb))
	if err != nil {
		return entities.Idea{}, err
	}
	expr := "SET #feedbacks = list_append(if_not_exists(#feedbacks, :empty), :fb)"
	names := map[string]string{"#feedbacks": "feedbacks"}
	values := map[string]types.AttributeValue{
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":fb":    &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: entry}}},
	}
	return r.update(ctx, id, expr, names, values)
}

func (r *IdeaDynamoRepository) UpdateImplementation(ctx context.Context, id string, status entities.ImplementationStatus, agent string) (entities.Idea, error) {
	expr := "SET #implementation_status = :status, #implementation_agent = :agent"
	names := map[string]string{
		"#implementation_status": "implementation_status",
		"#implementation_agent":  "implementation_agent",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":agent":  &types.AttributeValueMemberS{Value: agent},
	}
	return r.update(ctx, id, expr, names, values)
}

func (r *IdeaDynamoRepository) IncrementVotes(ctx context.Context, id string) (int, error) {
	return incrementVotes(ctx, r.ddb, r.tableName, id)
}

func (r *IdeaDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.Idea, error) {
	attrs, err := updateExisting(ctx, r.ddb, r.tableName, id, expr, names, values, types.ReturnValueAllNew)
	if err != nil {
		return entities.Idea{}, err
	}
	return decodeIdea(attrs)
}

// incrementVotes adds one vote and returns the new count, or 0 when the item
// does not exist.
func incrementVotes(ctx context.Context, ddb DynamoDBAPI, table, id string) (int, error) {
	attrs, err := updateExisting(ctx, ddb, table, id,
		"ADD #votes :one",
		map[string]string{"#votes": "votes"},
		map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		types.ReturnValueUpdatedNew,
	)
	if err != nil || attrs == nil {
		return 0, err
	}
	var votes int
	if err := attributevalue.Unmarshal(attrs["votes"], &votes); err != nil {
		return 0, fmt.Errorf("decode votes: %w", err)
	}
	return votes, nil
}

func decodeIdea(av map[string]types.AttributeValue) (entities.Idea, error) {
	if len(av) == 0 {
		return entities.Idea{}, nil
	}
	var it ideaItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Idea{}, err
	}
	return fromIdeaItem(it), nil
}

func toIdeaItem(i entities.Idea) ideaItem {
	evals := make([]evaluationItem, 0, len(i.Evaluations))
	for _, e := range i.Evaluations {
		scores := make([]criterionScoreItem, 0, len(e.Scores))
		for _, s := range e.Scores {
			scores = append(scores, criterionScoreItem{CriterionID: s.CriterionID, Score: s.Score})
		}
		evals = append(evals, evaluationItem{
			EvaluatorID:    e.EvaluatorID,
			Type:           string(e.Type),
			Date:           formatTime(e.Date),
			Scores:         scores,
			RelevanceScore: e.RelevanceScore,
			Justification:  e.Justification,
		})
	}
	feedbacks := make([]feedbackItem, 0, len(i.Feedbacks))
	for _, f := range i.Feedbacks {
		feedbacks = append(feedbacks, toFeedbackItem(f))
	}

	return ideaItem{
		ID:                    i.ID,
		Registration:          i.Registration,
		FullName:              i.FullName,
		Nickname:              i.Nickname,
		Phone:                 i.Phone,
		Email:                 i.Email,
		GreenBelt:             i.GreenBelt,
		Sector:                i.Sector,
		IdeaDate:              i.IdeaDate,
		Category:              i.Category,
		Location:              i.Location,
		Problem:               i.Problem,
		Proposal:              i.Proposal,
		ImplementationDetails: i.ImplementationDetails,
		Investment:            i.Investment,
		FinancialReturn:       i.FinancialReturn,
		Manager:               i.Manager,
		SelectedCriteria:      nonNilStrings(i.SelectedCriteria),
		ProfilePhoto:          i.ProfilePhoto,
		VideoURL:              i.VideoURL,
		Title:                 i.Title,
		Author:                i.Author,
		AuthorID:              i.AuthorID,
		Area:                  i.Area,
		DateSubmitted:         i.DateSubmitted,
		Cycle:                 i.Cycle,
		Year:                  i.Year,
		FinalType:             string(i.Classification),
		Evaluations:           evals,
		FinalScore:            i.FinalScore,
		Votes:                 i.Votes,
		ImplementationStatus:  string(i.ImplementationStatus),
		ImplementationAgent:   i.ImplementationAgent,
		Feedbacks:             feedbacks,
	}
}

func toFeedbackItem(f entities.Feedback) feedbackItem {
	return feedbackItem{User: f.User, Text: f.Text, Date: formatTime(f.Date)}
}

func fromIdeaItem(it ideaItem) entities.Idea {
	evals := make([]entities.Evaluation, 0, len(it.Evaluations))
	for _, e := range it.Evaluations {
		var scores []entities.CriterionScore
		for _, s := range e.Scores {
			scores = append(scores, entities.CriterionScore{CriterionID: s.CriterionID, Score: s.Score})
		}
		evals = append(evals, entities.Evaluation{
			EvaluatorID:    e.EvaluatorID,
			Type:           entities.Classification(e.Type),
			Date:           parseTime(e.Date),
			Scores:         scores,
			RelevanceScore: e.RelevanceScore,
			Justification:  e.Justification,
		})
	}
	feedbacks := make([]entities.Feedback, 0, len(it.Feedbacks))
	for _, f := range it.Feedbacks {
		feedbacks = append(feedbacks, entities.Feedback{User: f.User, Text: f.Text, Date: parseTime(f.Date)})
	}
	classification := entities.Classification(it.FinalType)
	if classification == "" {
		classification = entities.ClassificationPending
	}

	return entities.Idea{
		ID:                    it.ID,
		Registration:          it.Registration,
		FullName:              it.FullName,
		Nickname:              it.Nickname,
		Phone:                 it.Phone,
		Email:                 it.Email,
		GreenBelt:             it.GreenBelt,
		Sector:                it.Sector,
		IdeaDate:              it.IdeaDate,
		Category:              it.Category,
		Location:              it.Location,
		Problem:               it.Problem,
		Proposal:              it.Proposal,
		ImplementationDetails: it.ImplementationDetails,
		Investment:            it.Investment,
		FinancialReturn:       it.FinancialReturn,
		Manager:               it.Manager,
		SelectedCriteria:      it.SelectedCriteria,
		ProfilePhoto:          it.ProfilePhoto,
		VideoURL:              it.VideoURL,
		Title:                 it.Title,
		Author:                it.Author,
		AuthorID:              it.AuthorID,
		Area:                  it.Area,
		DateSubmitted:         it.DateSubmitted,
		Cycle:                 it.Cycle,
		Year:                  it.Year,
		Classification:        classification,
		Evaluations:           evals,
		FinalScore:            it.FinalScore,
		Votes:                 it.Votes,
		ImplementationStatus:  entities.ImplementationStatus(it.ImplementationStatus),
		ImplementationAgent:   it.ImplementationAgent,
		Feedbacks:             feedbacks,
	}
}
