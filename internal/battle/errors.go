package battle

import "errors"

// Sentinel errors for the taxonomy in §7. ErrInvalidChoice and
// ErrIllegalState are the only two error kinds that ever surface from
// Engine.Step/ApplyForcedSwitch; everything else (MoveUnknown,
// HazardOrResidualKO) degrades in-band to a FAIL event or a faint-queue
// entry and never returns an error.
var (
	// ErrInvalidChoice: a caller-supplied choice was illegal (fainted/empty
	// slot, 0 PP, switch to a fainted or already-active index, a second
	// Terastallization). Refused at Step entry; state is never mutated. An
	// out-of-range move target is not an error: the target resolver falls
	// back to the move's default target.
	ErrInvalidChoice = errors.New("battle: invalid choice")

	// ErrIllegalState: Step called while Ended, or ApplyForcedSwitch called
	// for a slot not in the pending set.
	ErrIllegalState = errors.New("battle: illegal state")

	// ErrRegistryMissing: an Engine was constructed with incomplete static
	// tables. Fatal at construction; the engine never starts.
	ErrRegistryMissing = errors.New("battle: registry missing required tables")
)
