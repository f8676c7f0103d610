package usecase

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"interlab/internal/domain/cycle"
	"interlab/internal/domain/entities"
	"interlab/internal/domain/ranking"
	"interlab/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	titleMaxRunes       = 50
	recentFeedbackLimit = 5
)

var (
	ErrIdeaFieldRequired           = fmt.Errorf("%w: required field missing", ErrValidation)
	ErrEmptyFeedback               = fmt.Errorf("%w: feedback text is empty", ErrValidation)
	ErrInvalidImplementationStatus = fmt.Errorf("%w: invalid implementation status", ErrValidation)
	ErrIdeaNotInnovative           = fmt.Errorf("%w: idea is not classified as innovative", ErrValidation)
	ErrNotIdeaAuthor               = fmt.Errorf("%w: only the author can change this idea", ErrForbidden)
)

// IdeaInput carries the form fields an author controls.
type IdeaInput struct {
	Registration          string
	FullName              string
	Nickname              string
	Phone                 string
	Email                 string
	GreenBelt             string
	Sector                string
	IdeaDate              string
	Category              string
	Location              string
	Problem               string
	Proposal              string
	ImplementationDetails string
	Investment            string
	FinancialReturn       string
	Manager               string
	SelectedCriteria      []string
	ProfilePhoto          string
	VideoURL              string
}

func (in IdeaInput) normalized() IdeaInput {
	fields := []*string{
		&in.Registration, &in.FullName, &in.Nickname, &in.Phone, &in.Email, &in.GreenBelt,
		&in.Sector, &in.IdeaDate, &in.Category, &in.Location, &in.Problem, &in.Proposal,
		&in.ImplementationDetails, &in.Investment, &in.FinancialReturn, &in.Manager,
		&in.ProfilePhoto, &in.VideoURL,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	return in
}

func (in IdeaInput) validate() error {
	switch {
	case in.Problem == "":
		return fmt.Errorf("%w: problem", ErrIdeaFieldRequired)
	case in.Proposal == "":
		return fmt.Errorf("%w: idea", ErrIdeaFieldRequired)
	case in.GreenBelt == "":
		return fmt.Errorf("%w: green_belt", ErrIdeaFieldRequired)
	}
	return nil
}

// applyTo copies the author-controlled fields onto idea and refreshes the
// derived ones (title, author, area).
func (in IdeaInput) applyTo(idea entities.Idea, p entities.Principal) entities.Idea {
	idea.Registration = firstNonEmpty(in.Registration, p.Registration)
	idea.FullName = firstNonEmpty(in.FullName, p.Name)
	idea.Nickname = in.Nickname
	idea.Phone = in.Phone
	idea.Email = in.Email
	idea.GreenBelt = in.GreenBelt
	idea.Sector = in.Sector
	idea.IdeaDate = in.IdeaDate
	idea.Category = in.Category
	idea.Location = in.Location
	idea.Problem = in.Problem
	idea.Proposal = in.Proposal
	idea.ImplementationDetails = in.ImplementationDetails
	idea.Investment = in.Investment
	idea.FinancialReturn = in.FinancialReturn
	idea.Manager = in.Manager
	idea.SelectedCriteria = slices.Clone(in.SelectedCriteria)
	idea.ProfilePhoto = in.ProfilePhoto
	idea.VideoURL = in.VideoURL

	idea.Title = IdeaTitle(in.Proposal)
	idea.Author = idea.FullName
	idea.Area = in.Sector
	return idea
}

// IdeaTitle is the first 50 characters of the proposal, with "..." appended
// when it was cut.
func IdeaTitle(proposal string) string {
	if utf8.RuneCountInString(proposal) <= titleMaxRunes {
		return proposal
	}
	return string([]rune(proposal)[:titleMaxRunes]) + "..."
}

// IdeaFilter narrows idea listings. Empty fields match everything.
type IdeaFilter struct {
	Search         string
	Classification entities.Classification
	Area           string
}

func (f IdeaFilter) matches(idea entities.Idea) bool {
	if f.Classification != "" && idea.Classification != f.Classification {
		return false
	}
	if f.Area != "" && !strings.EqualFold(idea.Area, f.Area) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		return strings.Contains(strings.ToLower(idea.Title), q) ||
			strings.Contains(strings.ToLower(idea.Author), q) ||
			strings.Contains(strings.ToLower(idea.Problem), q)
	}
	return true
}

type ImplementationColumn struct {
	Status entities.ImplementationStatus
	Ideas  []entities.Idea
}

// ImplementationBoard groups innovative ideas by implementation status, one
// column per status in workflow order.
type ImplementationBoard struct {
	Columns []ImplementationColumn
}

type DashboardStats struct {
	Total       int
	Pending     int
	Innovative  int
	Implemented int
}

type FeedbackActivity struct {
	IdeaID     string
	IdeaTitle  string
	IdeaAuthor string
	Feedback   entities.Feedback
}

type Dashboard struct {
	Stats           DashboardStats
	RankingVisible  bool
	Podium          []entities.Idea
	RecentFeedbacks []FeedbackActivity
}

// IIdeaUseCase exposes idea submission, browsing and follow-up operations.
type IIdeaUseCase interface {
	Submit(ctx context.Context, p entities.Principal, in IdeaInput) (entities.Idea, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Idea, error)
	List(ctx context.Context, p entities.Principal, f IdeaFilter) ([]entities.Idea, error)
	Edit(ctx context.Context, p entities.Principal, id string, in IdeaInput) (entities.Idea, error)
	AddFeedback(ctx context.Context, p entities.Principal, id, text string) (entities.Idea, error)
	UpdateImplementation(ctx context.Context, p entities.Principal, id string, status entities.ImplementationStatus, agent string) (entities.Idea, error)
	ImplementationBoard(ctx context.Context, p entities.Principal) (ImplementationBoard, error)
	Dashboard(ctx context.Context, p entities.Principal) (Dashboard, error)
}

type IdeaUseCase struct {
	repo   interfaces.IIdeaRepository
	cycles interfaces.ICycleConfigRepository
	gate   cycle.Gate
	now    func() time.Time
	newID  func() string
}

var _ IIdeaUseCase = (*IdeaUseCase)(nil)

func NewIdeaUseCase(repo interfaces.IIdeaRepository, cycles interfaces.ICycleConfigRepository, gate cycle.Gate) *IdeaUseCase {
	return &IdeaUseCase{repo: repo, cycles: cycles, gate: gate, now: time.Now, newID: uuid.NewString}
}

func (u *IdeaUseCase) Submit(ctx context.Context, p entities.Principal, in IdeaInput) (entities.Idea, error) {
	log.Printf("[idea][usecase] submit start author_id=%s role=%s", p.Registration, p.Role)
	if !p.HasAnyRole(entities.RoleColaborador, entities.RoleGreenBelt, entities.RoleAdmin) {
		return entities.Idea{}, ErrRoleNotAllowed
	}
	in = in.normalized()
	if err := in.validate(); err != nil {
		return entities.Idea{}, err
	}

	cfg, err := loadActiveCycle(ctx, u.cycles, entities.ProgramIdeas)
	if err != nil {
		return entities.Idea{}, err
	}
	now := u.now()
	if !u.gate.IsSubmissionAllowed(p.Role, cfg, now) {
		log.Printf("[idea][usecase] submission closed author_id=%s cycle=%s", p.Registration, cfg.ID)
		return entities.Idea{}, ErrSubmissionClosed
	}

	idea := in.applyTo(entities.Idea{
		ID:             u.newID(),
		AuthorID:       p.Registration,
		DateSubmitted:  cycle.FormatDate(now, u.gate.Location),
		Cycle:          cfg.Quarter,
		Year:           cfg.Year,
		Classification: entities.ClassificationPending,
		Evaluations:    []entities.Evaluation{},
		Feedbacks:      []entities.Feedback{},
	}, p)

	created, err := u.repo.Create(ctx, idea)
	if err != nil {
		log.Printf("[idea][usecase] create failed id=%s err=%v", idea.ID, err)
		return entities.Idea{}, persistenceError("create idea", err)
	}
	log.Printf("[idea][usecase] submitted id=%s cycle=%d year=%d", created.ID, created.Cycle, created.Year)
	return created, nil
}

func (u *IdeaUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Idea, error) {
	idea, err := u.load(ctx, id)
	if err != nil {
		return entities.Idea{}, err
	}
	if !canSeeIdea(p, idea) {
		return entities.Idea{}, ErrNotIdeaAuthor
	}
	return idea, nil
}

func (u *IdeaUseCase) List(ctx context.Context, p entities.Principal, f IdeaFilter) ([]entities.Idea, error) {
	return listIdeas(ctx, u.repo, p, f)
}

func listIdeas(ctx context.Context, repo interfaces.IIdeaRepository, p entities.Principal, f IdeaFilter) ([]entities.Idea, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, persistenceError("list ideas", err)
	}
	out := make([]entities.Idea, 0, len(all))
	for _, idea := range all {
		if canSeeIdea(p, idea) && f.matches(idea) {
			out = append(out, idea)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (u *IdeaUseCase) Edit(ctx context.Context, p entities.Principal, id string, in IdeaInput) (entities.Idea, error) {
	idea, err := u.load(ctx, id)
	if err != nil {
		return entities.Idea{}, err
	}
	if idea.AuthorID != p.Registration {
		return entities.Idea{}, ErrNotIdeaAuthor
	}
	in = in.normalized()
	if err := in.validate(); err != nil {
		return entities.Idea{}, err
	}

	cfg, err := loadActiveCycle(ctx, u.cycles, entities.ProgramIdeas)
	if err != nil {
		return entities.Idea{}, err
	}
	if !u.gate.IsSubmissionAllowed(p.Role, cfg, u.now()) {
		log.Printf("[idea][usecase] edit refused; submission closed id=%s", idea.ID)
		return entities.Idea{}, ErrSubmissionClosed
	}

	updated, err := u.repo.UpdateContent(ctx, in.applyTo(idea, p))
	if err != nil {
		return entities.Idea{}, persistenceError("update idea", err)
	}
	if updated.ID == "" {
		return entities.Idea{}, ErrIdeaNotFound
	}
	log.Printf("[idea][usecase] edited id=%s", updated.ID)
	return updated, nil
}

func (u *IdeaUseCase) AddFeedback(ctx context.Context, p entities.Principal, id, text string) (entities.Idea, error) {
	if !p.Role.IsManagement() {
		return entities.Idea{}, ErrRoleNotAllowed
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Idea{}, ErrInvalidIdeaID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Idea{}, ErrEmptyFeedback
	}

	fb := entities.Feedback{User: p.Name, Text: text, Date: u.now().UTC()}
	updated, err := u.repo.AppendFeedback(ctx, id, fb)
	if err != nil {
		log.Printf("[idea][usecase] feedback append failed id=%s err=%v", id, err)
		return entities.Idea{}, persistenceError("append feedback", err)
	}
	if updated.ID == "" {
		return entities.Idea{}, ErrIdeaNotFound
	}
	log.Printf("[idea][usecase] feedback added id=%s by=%s total=%d", id, p.Registration, len(updated.Feedbacks))
	return updated, nil
}

func (u *IdeaUseCase) UpdateImplementation(ctx context.Context, p entities.Principal, id string, status entities.ImplementationStatus, agent string) (entities.Idea, error) {
	if !p.HasAnyRole(entities.RoleAgenteImplantacao, entities.RoleAdmin) {
		return entities.Idea{}, ErrRoleNotAllowed
	}
	if !status.Valid() {
		return entities.Idea{}, ErrInvalidImplementationStatus
	}
	idea, err := u.load(ctx, id)
	if err != nil {
		return entities.Idea{}, err
	}
	if idea.Classification != entities.ClassificationInnovative {
		return entities.Idea{}, ErrIdeaNotInnovative
	}

	agent = firstNonEmpty(strings.TrimSpace(agent), idea.ImplementationAgent, p.Name)
	updated, err := u.repo.UpdateImplementation(ctx, idea.ID, status, agent)
	if err != nil {
		return entities.Idea{}, persistenceError("update implementation", err)
	}
	if updated.ID == "" {
		return entities.Idea{}, ErrIdeaNotFound
	}
	log.Printf("[idea][usecase] implementation updated id=%s status=%s agent=%q", updated.ID, status, agent)
	return updated, nil
}

func (u *IdeaUseCase) ImplementationBoard(ctx context.Context, p entities.Principal) (ImplementationBoard, error) {
	if !p.Role.Valid() {
		return ImplementationBoard{}, ErrRoleNotAllowed
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return ImplementationBoard{}, persistenceError("list ideas", err)
	}
	sortNewestFirst(all)

	board := ImplementationBoard{Columns: make([]ImplementationColumn, len(entities.ImplementationStatuses))}
	index := make(map[entities.ImplementationStatus]int, len(entities.ImplementationStatuses))
	for i, s := range entities.ImplementationStatuses {
		board.Columns[i] = ImplementationColumn{Status: s, Ideas: []entities.Idea{}}
		index[s] = i
	}
	for _, idea := range all {
		if idea.Classification != entities.ClassificationInnovative {
			continue
		}
		i, ok := index[idea.EffectiveImplementationStatus()]
		if !ok {
			continue
		}
		board.Columns[i].Ideas = append(board.Columns[i].Ideas, idea)
	}
	return board, nil
}

func (u *IdeaUseCase) Dashboard(ctx context.Context, p entities.Principal) (Dashboard, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return Dashboard{}, persistenceError("list ideas", err)
	}
	cfg, err := loadActiveCycle(ctx, u.cycles, entities.ProgramIdeas)
	if err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	for _, idea := range all {
		if !canSeeIdea(p, idea) {
			continue
		}
		d.Stats.Total++
		switch idea.Classification {
		case entities.ClassificationPending:
			d.Stats.Pending++
		case entities.ClassificationInnovative:
			d.Stats.Innovative++
		}
		if idea.ImplementationStatus == entities.ImplementationDone {
			d.Stats.Implemented++
		}
	}

	d.RankingVisible = ranking.CanView(p.Role, cfg.IsPublished)
	d.Podium = []entities.Idea{}
	if d.RankingVisible {
		d.Podium = ranking.Podium(rankIdeas(all), ranking.PodiumSize)
	}
	d.RecentFeedbacks = recentFeedbacks(all, p, recentFeedbackLimit)
	return d, nil
}

func (u *IdeaUseCase) load(ctx context.Context, id string) (entities.Idea, error) {
	return loadIdea(ctx, u.repo, id)
}

func loadIdea(ctx context.Context, repo interfaces.IIdeaRepository, id string) (entities.Idea, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Idea{}, ErrInvalidIdeaID
	}
	idea, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[idea][usecase] get failed id=%s err=%v", id, err)
		return entities.Idea{}, persistenceError("get idea", err)
	}
	if idea.ID == "" {
		return entities.Idea{}, ErrIdeaNotFound
	}
	return idea, nil
}

// canSeeIdea: colaboradores only see their own ideas, management sees all.
func canSeeIdea(p entities.Principal, idea entities.Idea) bool {
	return p.Role.IsManagement() || (p.Registration != "" && idea.AuthorID == p.Registration)
}

func recentFeedbacks(ideas []entities.Idea, p entities.Principal, limit int) []FeedbackActivity {
	out := []FeedbackActivity{}
	for _, idea := range ideas {
		mine := p.Registration != "" && idea.AuthorID == p.Registration
		for _, fb := range idea.Feedbacks {
			if !mine && fb.User != p.Name {
				continue
			}
			out = append(out, FeedbackActivity{IdeaID: idea.ID, IdeaTitle: idea.Title, IdeaAuthor: idea.Author, Feedback: fb})
		}
	}
	slices.SortStableFunc(out, func(a, b FeedbackActivity) int {
		return b.Feedback.Date.Compare(a.Feedback.Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortNewestFirst(ideas []entities.Idea) {
	slices.SortStableFunc(ideas, func(a, b entities.Idea) int {
		return strings.Compare(b.DateSubmitted, a.DateSubmitted)
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
