package calculator

import "errors"

// Validation errors surfaced to the submitting action. All are locally
// recoverable: the user corrects the input and retries.
var (
	// ErrInvalidAmount indicates the total fee was missing, zero, negative
	// or not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoPlayersSelected indicates an empty player selection.
	ErrNoPlayersSelected = errors.New("no players selected")

	// ErrInvalidTeamSize indicates a selection outside the 11-12 range.
	// Wrapped errors carry the actual count.
	ErrInvalidTeamSize = errors.New("invalid team size")
)
