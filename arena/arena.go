// This file declares Arena, Snapshot, the undo log, and all operations.

package arena

import "fmt"

// undo log entry kinds.
const (
	pushed      = iota // a Push appended one element
	overwritten        // a Set/PtrMut replaced an element's value
)

// undo records one reversible mutation.
type undo[T any] struct {
	kind  int
	index int
	prev  T // prior value; meaningful only for overwritten
}

// Snapshot marks a point in an Arena's mutation history.
//
// A Snapshot is obtained from Arena.Snapshot and resolved exactly once,
// by Arena.Rollback or Arena.Commit, in LIFO order with respect to
// other open snapshots of the same arena.
type Snapshot struct {
	undoLen int // undo-log length when the snapshot was taken
	depth   int // nesting depth, 1 = outermost
}

// Arena is an append-only, index-addressed store for values of type T.
//
// Indices are dense, zero-based, assigned monotonically at Push time,
// and never reused. The zero value is not usable; construct with New.
type Arena[T any] struct {
	values []T
	log    []undo[T] // recorded only while a snapshot is open
	open   int       // number of unresolved snapshots
}

// New returns an empty Arena.
// Complexity: O(1)
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Len reports the number of elements currently stored.
// Complexity: O(1)
func (a *Arena[T]) Len() int {
	return len(a.values)
}

// Push appends v and returns its index, equal to the arena length
// before the call.
// Complexity: O(1) amortized
func (a *Arena[T]) Push(v T) int {
	idx := len(a.values)
	a.values = append(a.values, v)
	if a.open > 0 {
		a.log = append(a.log, undo[T]{kind: pushed, index: idx})
	}

	return idx
}

// Get returns a copy of the element at index i.
// Panics if i has not been returned by Push on this arena.
// Complexity: O(1)
func (a *Arena[T]) Get(i int) T {
	return a.values[i]
}

// Ptr returns a pointer to the element at index i for shared, read-only
// access. The pointer is invalidated by the next Push (the backing
// array may move); do not retain it across mutations.
// Complexity: O(1)
func (a *Arena[T]) Ptr(i int) *T {
	return &a.values[i]
}

// Set replaces the element at index i with v. While a snapshot is
// open, the prior value is recorded so Rollback can restore it.
// Complexity: O(1)
func (a *Arena[T]) Set(i int, v T) {
	if a.open > 0 {
		a.log = append(a.log, undo[T]{kind: overwritten, index: i, prev: a.values[i]})
	}
	a.values[i] = v
}

// PtrMut returns a pointer to the element at index i for in-place
// mutation. While a snapshot is open, the current value is recorded
// first, so any mutation through the pointer is undone by Rollback.
// The pointer is invalidated by the next Push.
// Complexity: O(1)
func (a *Arena[T]) PtrMut(i int) *T {
	if a.open > 0 {
		a.log = append(a.log, undo[T]{kind: overwritten, index: i, prev: a.values[i]})
	}

	return &a.values[i]
}

// All exposes the backing slice in insertion order. The slice is a
// view, not a copy: it remains valid until the next Push and must be
// treated as read-only unless the caller holds exclusive access.
// Complexity: O(1)
func (a *Arena[T]) All() []T {
	return a.values
}

// Snapshot opens a savepoint and returns its token. Every Push, Set,
// and PtrMut performed until the matching Rollback or Commit is
// recorded in the undo log.
// Complexity: O(1)
func (a *Arena[T]) Snapshot() Snapshot {
	a.open++

	return Snapshot{undoLen: len(a.log), depth: a.open}
}

// Rollback undoes every mutation recorded since s was taken, restoring
// the arena to its exact length and content at Snapshot time, and
// closes s. Panics unless s is the innermost open snapshot.
// Complexity: O(U), U = entries since s
func (a *Arena[T]) Rollback(s Snapshot) {
	a.resolve(s)
	var zero T
	for j := len(a.log) - 1; j >= s.undoLen; j-- {
		u := a.log[j]
		switch u.kind {
		case pushed:
			// Pushes are undone in reverse, so u.index is always the
			// current last element.
			a.values[u.index] = zero
			a.values = a.values[:u.index]
		case overwritten:
			a.values[u.index] = u.prev
		}
	}
	a.log = a.log[:s.undoLen]
	a.open--
}

// Commit closes s, keeping every mutation performed since it was
// taken. Committing the outermost snapshot discards the undo log;
// committing a nested snapshot folds its entries into the enclosing
// one, which may still roll them back. Panics unless s is the
// innermost open snapshot.
// Complexity: O(1); O(U) for the outermost snapshot
func (a *Arena[T]) Commit(s Snapshot) {
	a.resolve(s)
	a.open--
	if a.open == 0 {
		a.log = a.log[:0]
	}
}

// resolve validates that s is the innermost open snapshot.
func (a *Arena[T]) resolve(s Snapshot) {
	if s.depth == 0 {
		panic("arena: snapshot was not taken from this arena")
	}
	if s.depth != a.open {
		panic(fmt.Sprintf("arena: snapshot at depth %d resolved out of order (innermost open depth is %d)", s.depth, a.open))
	}
}
