package chain

import "github.com/pkg/errors"

// Sentinel errors for the library's failure taxonomy. Wrap with
// errors.Wrapf for context; callers match with errors.Is.
var (
	ErrNullChain      = errors.New("roki: null chain")
	ErrEmptyChain     = errors.New("roki: chain has no links")
	ErrSizeMismatch   = errors.New("roki: vector/matrix size mismatch")
	ErrUnknownJoint   = errors.New("roki: unknown joint kind")
	ErrUnknownLink    = errors.New("roki: unknown link name")
	ErrAllocation     = errors.New("roki: allocation failure")
	ErrFatalInvariant = errors.New("roki: invariant violation")
)
