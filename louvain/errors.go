package louvain

import (
	"errors"
	"fmt"

	"github.com/joeycumines/graphwork/community"
)

// ErrInputError is the §7 InputError category: the supplied graph.View is
// structurally unusable (e.g. zero vertices). The (out of scope) loader is
// responsible for catching file-level malformation or asymmetry; this
// package only guards the invariants it can cheaply check at the engine's
// own boundary.
var ErrInputError = errors.New(`louvain: input error`)

// ErrCapacityError is the §7 CapacityError category: a community id outside
// the phase's community.Table was referenced. Re-exported from community so
// callers of this package can errors.Is against it without importing
// community directly. The actual bounds check lives on community.Table,
// since that's the type that owns the slots being indexed.
var ErrCapacityError = community.ErrCapacityError

func inputErrorf(format string, args ...any) error {
	return fmt.Errorf(`%w: %s`, ErrInputError, fmt.Sprintf(format, args...))
}
