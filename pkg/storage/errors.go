package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Wrap one of these as Cause on a GraphError, or compare
// against it with errors.Is through GraphError.Unwrap.
var (
	// ErrUnknownEndpoint is the cause when an added edge's source or target
	// is not present in nodeMap at the point edges are applied in a batch.
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)

// GraphError provides structured error information for a failed commit.
type GraphError struct {
	Op      string // operation that failed (e.g. "AddEdge", "WithMutations")
	Entity  string // entity kind (e.g. "edge", "node")
	ID      string // entity id, if applicable
	Cause   error
	Context string
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.ID != "" {
		if e.Context != "" {
			return fmt.Sprintf("%s %s %s (%s): %v", e.Op, e.Entity, e.ID, e.Context, e.Cause)
		}
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder for the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Edge sets the entity to "edge" with the given id.
func (b *ErrorBuilder) Edge(id EdgeID) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.ID = string(id)
	return b
}

// Node sets the entity to "node" with the given id.
func (b *ErrorBuilder) Node(id NodeID) *ErrorBuilder {
	b.err.Entity = "node"
	b.err.ID = string(id)
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// UnknownEndpointError builds the error raised when edgeID's source or
// target is absent from nodeMap at edge-apply time.
func UnknownEndpointError(edgeID EdgeID, missing NodeID) error {
	return NewError("AddEdge").Edge(edgeID).Context(fmt.Sprintf("endpoint %s not found", missing)).Cause(ErrUnknownEndpoint).Err()
}

// IsUnknownEndpoint reports whether err is (or wraps) ErrUnknownEndpoint.
func IsUnknownEndpoint(err error) bool {
	return errors.Is(err, ErrUnknownEndpoint)
}

// CycleError is raised when a batch would introduce a directed cycle. The
// prior graph is left untouched; Cycle is the ordered list of node ids with
// the first and last elements coinciding.
type CycleError struct {
	Cycle []NodeID
}

// Error renders "cycle detected: a -> b -> ... -> a".
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, id := range e.Cycle {
		parts[i] = string(id)
	}
	return fmt.Sprintf("cycle detected: %s", strings.Join(parts, " -> "))
}

// IsCycleDetected reports whether err is a *CycleError.
func IsCycleDetected(err error) bool {
	var ce *CycleError
	return errors.As(err, &ce)
}
