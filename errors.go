package qcircuit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQubit is returned when a qubit is requested with zero indices.
	ErrEmptyQubit = errors.New("qubit must have a nonzero number of indices")

	// ErrQubitConsumed is returned when a qubit that was already passed
	// into a merge, split, measure or conditioning operation is used again.
	ErrQubitConsumed = errors.New("qubit was already consumed by a previous operation")

	// ErrNoQubits is returned when a merge is requested over no qubits.
	ErrNoQubits = errors.New("merge requires at least one qubit")

	// ErrNoSplitIndices is returned when a split selects no indices.
	ErrNoSplitIndices = errors.New("split must select at least one index")

	// ErrSplitRemainder is returned when a split selects every index of the
	// qubit; a split must leave a remainder.
	ErrSplitRemainder = errors.New("split must leave at least one index")
)

// ErrOverlappingQubits indicates two qubits passed to a merge that address
// the same absolute index. Live qubits always hold disjoint index sets, so
// this signals a builder misuse such as merging a qubit with itself.
type ErrOverlappingQubits struct {
	Index uint64
}

func (e *ErrOverlappingQubits) Error() string {
	return fmt.Sprintf("merged qubits must hold disjoint indices, index %d appears twice", e.Index)
}

// ErrSplitIndexRange indicates a relative split position at or beyond the
// qubit's index count.
type ErrSplitIndexRange struct {
	Position uint64
	Size     int
}

func (e *ErrSplitIndexRange) Error() string {
	return fmt.Sprintf("relative split position %d out of range for qubit with %d indices", e.Position, e.Size)
}

// ErrSplitIndexMissing indicates an absolute split index not present in the
// qubit being split.
type ErrSplitIndexMissing struct {
	Index uint64
}

func (e *ErrSplitIndexMissing) Error() string {
	return fmt.Sprintf("split index %d does not exist in qubit", e.Index)
}

// ErrDuplicateSplitIndex indicates the same index selected twice in one split.
type ErrDuplicateSplitIndex struct {
	Index uint64
}

func (e *ErrDuplicateSplitIndex) Error() string {
	return fmt.Sprintf("split index %d selected more than once", e.Index)
}

// ErrInitialIndexRange indicates an initial basis-state index too large for
// the handle's index count.
type ErrInitialIndexRange struct {
	Index      uint64
	NumIndices int
}

func (e *ErrInitialIndexRange) Error() string {
	return fmt.Sprintf("initial state index %d too large for handle with %d indices", e.Index, e.NumIndices)
}

// ErrInitialStateSize indicates an initial state vector whose length is not
// 2^n for the handle's n indices.
type ErrInitialStateSize struct {
	Expected int
	Actual   int
}

func (e *ErrInitialStateSize) Error() string {
	return fmt.Sprintf("initial state must have %d amplitudes, got %d", e.Expected, e.Actual)
}
