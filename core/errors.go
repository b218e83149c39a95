// Package core: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the core
// package. All operations return these sentinels and callers match them via
// errors.Is. No operation panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers.

package core

import "errors"

var (
	// ErrVertexOutOfRange indicates a vertex id that is negative or not
	// below the current capacity where a valid id is required.
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrVertexInactive indicates an operation that requires an active
	// vertex was given an id whose liveness bit is clear.
	ErrVertexInactive = errors.New("core: vertex not active")

	// ErrCapacityExceeded indicates a vertex id at or beyond twice the
	// current capacity. Ordinary growth doubles capacity; a request this
	// far out signals caller misuse rather than a recoverable condition.
	ErrCapacityExceeded = errors.New("core: vertex id exceeds growth bound")

	// ErrShrinkActive indicates a Realloc request below the highest active
	// vertex id, which would silently truncate live vertices. The request
	// is refused and the graph is left unchanged.
	ErrShrinkActive = errors.New("core: realloc would truncate active vertices")

	// ErrBadCapacity indicates a non-positive capacity request at
	// construction or reallocation time.
	ErrBadCapacity = errors.New("core: capacity must be positive")

	// ErrUnknownKind indicates an unrecognized backend kind passed to New.
	ErrUnknownKind = errors.New("core: unknown backend kind")
)
