package dynamicac

import (
	"errors"
	"fmt"
)

// Sentinel errors are package-level errors.New values checked with
// errors.Is, reserved for conditions that are not the primary
// conflict-explanation failure mode.
var (
	// ErrRetractWipeout indicates retract produced a domain wipeout. This is
	// treated as a logic error: resurrecting values can only enlarge active
	// domains, so a previously-consistent engine must never wipe out during
	// retraction.
	ErrRetractWipeout = errors.New("dynamicac: retract produced a domain wipeout")
)

// WipeoutError is returned by AddEquality/AddInequality when propagation
// empties a variable's active domain. It carries the newly-inserted
// constraint id and the conflict explanation: the set of distinct
// suppressor ids observed on the wiped variable's slots after propagation
// halted.
//
// The triggering constraint remains registered; Engine transitions to the
// Failed state and the caller is expected to retract either Constraint or
// one of the ids in Explanation to return to Consistent.
type WipeoutError struct {
	Variable    int   // the variable whose active domain became empty
	Constraint  int   // the constraint id that was being added when the wipeout surfaced
	Explanation []int // distinct suppressor ids present on the wiped variable's slots, in ascending order
}

func (e *WipeoutError) Error() string {
	return fmt.Sprintf("dynamicac: domain wipeout on variable %d adding constraint %d (explanation: %v)", e.Variable, e.Constraint, e.Explanation)
}

// unknownVariable panics, treating a lookup miss on a variable id as a
// programming error rather than a returned one.
func unknownVariable(id int) {
	panic(fmt.Sprintf("dynamicac: unknown variable id %d", id))
}
