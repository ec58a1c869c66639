package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// DuplicateError represents a violated uniqueness invariant.
type DuplicateError struct {
	Resource string
}

func (e DuplicateError) Error() string {
	if e.Resource == "" {
		return "already exists"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e DuplicateError) Is(target error) bool {
	_, ok := target.(DuplicateError)
	if ok {
		return true
	}
	_, ok = target.(*DuplicateError)
	return ok
}

// DomainMismatchError represents a cross-reference outside the
// building/election scope, e.g. a voter from another building.
type DomainMismatchError struct {
	Detail string
}

func (e DomainMismatchError) Error() string {
	if e.Detail == "" {
		return "domain mismatch"
	}
	return e.Detail
}

func (e DomainMismatchError) Is(target error) bool {
	_, ok := target.(DomainMismatchError)
	if ok {
		return true
	}
	_, ok = target.(*DomainMismatchError)
	return ok
}

// PeriodClosedError represents an action attempted outside its time window.
type PeriodClosedError struct {
	Detail string
}

func (e PeriodClosedError) Error() string {
	if e.Detail == "" {
		return "period closed"
	}
	return e.Detail
}

func (e PeriodClosedError) Is(target error) bool {
	_, ok := target.(PeriodClosedError)
	if ok {
		return true
	}
	_, ok = target.(*PeriodClosedError)
	return ok
}

// InvalidStateError represents an action against an entity that is not
// in the required status.
type InvalidStateError struct {
	Detail string
}

func (e InvalidStateError) Error() string {
	if e.Detail == "" {
		return "invalid state"
	}
	return e.Detail
}

func (e InvalidStateError) Is(target error) bool {
	_, ok := target.(InvalidStateError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidStateError)
	return ok
}

// AlreadyVotedError is the one-vote-per-resident violation. The vote
// repository raises it when the (election, resident) unique index fires,
// so concurrent casts resolve to exactly one success.
type AlreadyVotedError struct{}

func (e AlreadyVotedError) Error() string {
	return "resident has already voted in this election"
}

func (e AlreadyVotedError) Is(target error) bool {
	_, ok := target.(AlreadyVotedError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyVotedError)
	return ok
}

// TooEarlyError is raised when tally runs before the election ends.
type TooEarlyError struct{}

func (e TooEarlyError) Error() string {
	return "election has not ended yet"
}

func (e TooEarlyError) Is(target error) bool {
	_, ok := target.(TooEarlyError)
	if ok {
		return true
	}
	_, ok = target.(*TooEarlyError)
	return ok
}

// NoVotesError is raised when tally runs against an empty ballot box.
type NoVotesError struct{}

func (e NoVotesError) Error() string {
	return "no votes cast in this election"
}

func (e NoVotesError) Is(target error) bool {
	_, ok := target.(NoVotesError)
	if ok {
		return true
	}
	_, ok = target.(*NoVotesError)
	return ok
}

// AlreadyConfirmedError is raised when confirm/reject hits a winner
// that is no longer pending.
type AlreadyConfirmedError struct{}

func (e AlreadyConfirmedError) Error() string {
	return "winner has already been decided"
}

func (e AlreadyConfirmedError) Is(target error) bool {
	_, ok := target.(AlreadyConfirmedError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyConfirmedError)
	return ok
}

// Sentinel errors for errors.Is matching.
var (
	ErrNotFound         = NotFoundError{}
	ErrDuplicate        = DuplicateError{}
	ErrDomainMismatch   = DomainMismatchError{}
	ErrPeriodClosed     = PeriodClosedError{}
	ErrInvalidState     = InvalidStateError{}
	ErrAlreadyVoted     = AlreadyVotedError{}
	ErrTooEarly         = TooEarlyError{}
	ErrNoVotes          = NoVotesError{}
	ErrAlreadyConfirmed = AlreadyConfirmedError{}
)

// ErrorKind returns the machine-readable kind for a domain error, or
// an empty string for errors outside the taxonomy.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range []struct {
		target error
		kind   string
	}{
		{ErrNotFound, "not_found"},
		{ErrDuplicate, "duplicate"},
		{ErrDomainMismatch, "domain_mismatch"},
		{ErrPeriodClosed, "period_closed"},
		{ErrInvalidState, "invalid_state"},
		{ErrAlreadyVoted, "already_voted"},
		{ErrTooEarly, "too_early"},
		{ErrNoVotes, "no_votes"},
		{ErrAlreadyConfirmed, "already_confirmed"},
	} {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return ""
}
