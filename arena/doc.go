// Package arena provides an append-only, index-addressed store with
// transactional savepoints.
//
// An Arena[T] hands out dense, zero-based indices at Push time and
// guarantees they stay valid for the arena's whole lifetime: elements
// are never deleted, moved, or renumbered. Overwrites of existing
// slots are allowed and, while a savepoint is open, are recorded in an
// undo log so that Rollback restores the arena to its exact prior
// length and content.
//
// Savepoints follow strict LIFO discipline: a savepoint must be
// rolled back or committed before any savepoint opened earlier than
// it. Committing the outermost savepoint discards the undo log;
// committing an inner one folds its changes into the enclosing
// savepoint.
//
// The arena is a trusted-capability store: indices passed to Get, Ptr,
// Set, and PtrMut must have been returned by Push on the same arena.
// Out-of-range indices and savepoint misuse panic; there are no
// recoverable errors.
//
// Complexity:
//
//   - Push, Get, Ptr, Set, PtrMut, Len: O(1) amortized.
//   - Snapshot, Commit: O(1) (outermost Commit is O(U) to drop the log,
//     U = undo entries).
//   - Rollback: O(U) over the entries recorded since the savepoint.
//
// Not safe for concurrent use; callers own the arena exclusively
// during any mutation.
package arena
