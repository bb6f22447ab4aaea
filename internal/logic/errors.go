package logic

import (
	"errors"
	"fmt"
	"strings"
)

// Validation sentinels. Wrap with fmt.Errorf("...: %w", Err...) to attach
// detail; callers test with errors.Is.
var (
	// ErrInvalidMatch covers tie scores and scores outside the configured bound.
	ErrInvalidMatch = errors.New("invalid match")

	// ErrInvalidRoster covers wrong team sizes and duplicate participants.
	ErrInvalidRoster = errors.New("invalid roster")
)

// PartialWriteError reports a submission that left the store in a partially
// updated state: the match record exists but the player/ledger fan-out did
// not complete and could not be rolled back. Completed lists the writes that
// went through, so reconciliation can be keyed on MatchID.
type PartialWriteError struct {
	MatchID   string
	Completed []string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write for match %s (completed: %s): %v",
		e.MatchID, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
