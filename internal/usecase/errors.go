package usecase

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a use case wraps exactly one of
// them so the HTTP layer can map it without knowing the specific cause.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence error")
	ErrForbidden    = errors.New("forbidden")
	ErrWindowClosed = errors.New("cycle window closed")
)

var (
	ErrInvalidIdeaID       = fmt.Errorf("%w: invalid idea id", ErrValidation)
	ErrInvalidNominationID = fmt.Errorf("%w: invalid nomination id", ErrValidation)
	ErrInvalidProgram      = fmt.Errorf("%w: invalid program", ErrValidation)
	ErrIdeaNotFound        = fmt.Errorf("idea %w", ErrNotFound)
	ErrNominationNotFound  = fmt.Errorf("nomination %w", ErrNotFound)
	ErrRoleNotAllowed      = fmt.Errorf("%w: role not allowed", ErrForbidden)
	ErrSubmissionClosed    = fmt.Errorf("%w: submission period closed", ErrWindowClosed)
	ErrVotingClosed        = fmt.Errorf("%w: voting is not open", ErrWindowClosed)
	ErrResultsPending      = fmt.Errorf("%w: results not published yet", ErrForbidden)
)

func validationError(err error) error {
	if errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
