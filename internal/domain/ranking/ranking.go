// Package ranking orders voted items and tallies vote sessions.
package ranking

import (
	"errors"
	"fmt"
	"slices"

	"interlab/internal/domain/entities"
)

const (
	// PodiumSize is the number of winners shown on the podium.
	PodiumSize = 3
	// MaxSelections bounds the items a voter may pick in one session.
	MaxSelections = 3
)

var (
	ErrEmptySelection     = errors.New("vote selection is empty")
	ErrTooManySelections  = errors.New("too many items selected")
	ErrDuplicateSelection = errors.New("item selected more than once")
)

// Rank returns a copy of items ordered by votes descending. The sort is
// stable: equal counts keep their input order, so callers choose the
// tie-break by pre-ordering the snapshot.
func Rank[T any](items []T, votes func(T) int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return votes(b) - votes(a)
	})
	return ranked
}

// Podium truncates ranked to its first n items.
func Podium[T any](ranked []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(ranked) < n {
		n = len(ranked)
	}
	return slices.Clone(ranked[:n])
}

// ValidateSelection checks one voting session: 1..MaxSelections distinct ids.
func ValidateSelection(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	if len(ids) > MaxSelections {
		return fmt.Errorf("%w: %d > %d", ErrTooManySelections, len(ids), MaxSelections)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSelection, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// RecordVote adds exactly one vote per selected id to tally. A nil tally
// starts empty.
func RecordVote(tally map[string]int, ids []string) map[string]int {
	if tally == nil {
		tally = make(map[string]int, len(ids))
	}
	for _, id := range ids {
		tally[id]++
	}
	return tally
}

// CanView reports whether role may see the results of a cycle. Management
// roles always can; everyone else waits for publication.
func CanView(role entities.UserRole, published bool) bool {
	return published || role.IsManagement()
}
