// Package owned provides a move-only resource type with explicit,
// observable ownership transfer.
//
// A Resource holds a cheap scalar, an expensive-to-duplicate sequence, and
// a validity flag. Exactly one valid Resource holds a given sequence at any
// time: transfers annex the sequence instead of duplicating it, and the
// source is flagged invalid afterward. An invalid Resource is a well-formed
// shell; it may be reassigned and reused.
package owned

import (
	"github.com/movable-go/movable/errors"
	"github.com/movable-go/movable/log"
	"github.com/movable-go/movable/metrics"
)

// ErrCopyDisallowed is returned on any attempt to duplicate a Resource.
var ErrCopyDisallowed = errors.New("owned: resource is move-only")

// noCopy triggers the go vet copylocks check on by-value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Resource is a move-only value. Use the package constructors; the zero
// value is an invalid shell.
type Resource[T any] struct {
	noCopy noCopy //nolint:unused

	scalar uint32
	seq    []T
	valid  bool
}

// New returns a valid Resource with a zero scalar and an empty sequence.
func New[T any]() *Resource[T] {
	return &Resource[T]{valid: true}
}

// NewWith returns a valid Resource holding scalar and the caller's
// sequence. The sequence is annexed, not copied: the caller's handle is
// emptied and must not be used to reach the elements afterward.
func NewWith[T any](scalar uint32, seq *[]T) *Resource[T] {
	r := &Resource[T]{scalar: scalar, seq: *seq, valid: true}
	*seq = nil

	metrics.AddAnnexedElements(len(r.seq))

	return r
}

// MoveFrom constructs a new Resource by transferring ownership from src.
// The scalar is copied, the sequence is annexed, and src is invalidated.
func MoveFrom[T any](src *Resource[T]) *Resource[T] {
	r := &Resource[T]{scalar: src.scalar, seq: src.seq, valid: true}

	src.seq = nil
	src.valid = false

	log.New("owned").With(log.Op("move-construct"), log.Scalar(r.scalar)).
		Trace("Move constructor called")
	metrics.IncMoveConstruct()

	return r
}

// MoveAssign transfers ownership from src into r, discarding r's prior
// contents. r becomes valid and src becomes invalid. Assigning a Resource
// from itself is a no-op: r stays valid and keeps its contents.
func (r *Resource[T]) MoveAssign(src *Resource[T]) *Resource[T] {
	if r == src {
		return r
	}

	r.scalar = src.scalar
	r.seq = src.seq
	r.valid = true

	src.seq = nil
	src.valid = false

	log.New("owned").With(log.Op("move-assign"), log.Scalar(r.scalar)).
		Trace("Move assignment operator called")
	metrics.IncMoveAssign()

	return r
}

// Clone always fails: a Resource must never be duplicated. The noCopy
// field rejects by-value copies at vet time; Clone rejects the rest at
// run time.
func (r *Resource[T]) Clone() (*Resource[T], error) {
	return nil, ErrCopyDisallowed
}

// IsValid reports whether the Resource holds unmoved-from data.
func (r *Resource[T]) IsValid() bool {
	return r.valid
}

// Scalar returns the scalar field.
func (r *Resource[T]) Scalar() uint32 {
	return r.scalar
}

// Len returns the number of elements in the sequence.
func (r *Resource[T]) Len() int {
	return len(r.seq)
}

// At returns a reference to the i-th sequence element. An out-of-range
// index panics.
func (r *Resource[T]) At(i int) *T {
	return &r.seq[i]
}

// Annex seizes ownership of a bare sequence handle, emptying it. The
// returned slice is the caller's to own; the original handle no longer
// reaches the elements.
func Annex[T any](seq *[]T) []T {
	out := *seq
	*seq = nil

	metrics.AddAnnexedElements(len(out))

	return out
}
