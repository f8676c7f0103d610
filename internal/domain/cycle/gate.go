// Package cycle decides whether cycle-bound writes are permitted on a given
// day. All comparisons are on calendar dates in one program-wide location.
package cycle

import (
	"errors"
	"fmt"
	"time"

	"interlab/internal/domain/entities"
)

// DateLayout is the storage format of every cycle boundary.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid cycle date")

// Day truncates t to its calendar date in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate reads a YYYY-MM-DD boundary as a calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate is the inverse of ParseDate.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// IsWindowOpen reports start <= today <= end, comparing calendar dates only.
// today is read on the calendar of start's location.
func IsWindowOpen(today, start, end time.Time) bool {
	d := dateKey(Day(today, start.Location()))
	return dateKey(start) <= d && d <= dateKey(end)
}

func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Gate evaluates a cycle config in the program location.
type Gate struct {
	Location *time.Location
}

func NewGate(loc *time.Location) Gate {
	if loc == nil {
		loc = time.Local
	}
	return Gate{Location: loc}
}

func (g Gate) window(now time.Time, startStr, endStr string) bool {
	start, err := ParseDate(startStr, g.Location)
	if err != nil {
		return false
	}
	end, err := ParseDate(endStr, g.Location)
	if err != nil {
		return false
	}
	return IsWindowOpen(Day(now, g.Location), start, end)
}

// SubmissionOpen reports whether now falls inside the submission window.
// Unparseable boundaries keep the window closed.
func (g Gate) SubmissionOpen(cfg entities.CycleConfig, now time.Time) bool {
	return g.window(now, cfg.SubmissionStart, cfg.SubmissionEnd)
}

func (g Gate) EvaluationOpen(cfg entities.CycleConfig, now time.Time) bool {
	return g.window(now, cfg.EvaluationStart, cfg.EvaluationEnd)
}

// IsSubmissionAllowed is true inside the submission window or for roles with
// the administrative override. The phase label is not consulted.
func (g Gate) IsSubmissionAllowed(role entities.UserRole, cfg entities.CycleConfig, now time.Time) bool {
	return role.HasAdminOverride() || g.SubmissionOpen(cfg, now)
}

// IsVotingOpen follows the phase label: votes are accepted only while an
// administrator has moved the cycle to final voting.
func (g Gate) IsVotingOpen(role entities.UserRole, cfg entities.CycleConfig) bool {
	return role.HasAdminOverride() || cfg.EffectivePhase() == entities.PhaseFinalVoting
}
