package usecase

import (
	"errors"
	"testing"
)

func TestErrorCategories(t *testing.T) {
	cases := []struct {
		err      error
		category error
	}{
		{ErrInvalidIdeaID, ErrValidation},
		{ErrInvalidProgram, ErrValidation},
		{ErrIdeaNotFound, ErrNotFound},
		{ErrNominationNotFound, ErrNotFound},
		{ErrRoleNotAllowed, ErrForbidden},
		{ErrResultsPending, ErrForbidden},
		{ErrSubmissionClosed, ErrWindowClosed},
		{ErrVotingClosed, ErrWindowClosed},
		{validationError(errors.New("bad")), ErrValidation},
		{persistenceError("get idea", errors.New("timeout")), ErrPersistence},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.category) {
			t.Fatalf("expected %q to wrap %q", tc.err, tc.category)
		}
	}

	cause := errors.New("timeout")
	if err := persistenceError("scan", cause); !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
	if err := validationError(ErrInvalidIdeaID); err != ErrInvalidIdeaID {
		t.Fatalf("expected validation errors not to be double wrapped, got %v", err)
	}
}
