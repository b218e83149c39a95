// Package connect: sentinel errors.

package connect

import "errors"

var (
	// ErrGraphNil indicates a nil core.Graph argument.
	ErrGraphNil = errors.New("connect: graph is nil")

	// ErrVertexNotFound indicates an id that is out of range or names an
	// inactive vertex.
	ErrVertexNotFound = errors.New("connect: vertex not active")
)
