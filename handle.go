package qcircuit

import "slices"

// QubitHandle is a lightweight read-only view of a qubit's absolute
// indices, detached from lineage. It validates and constructs initial-state
// requests without granting mutation rights over the owning qubit.
type QubitHandle struct {
	indices []uint64
}

// Indices returns a copy of the handle's absolute indices.
func (h *QubitHandle) Indices() []uint64 { return slices.Clone(h.indices) }

// NumIndices returns the number of indices the handle addresses.
func (h *QubitHandle) NumIndices() int { return len(h.indices) }

// InitFromIndex builds an index-form initial state request: the basis state
// index with all other amplitudes zero. The index must be below 2^n for the
// handle's n indices.
func (h *QubitHandle) InitFromIndex(index uint64) (*InitialState, error) {
	if index >= uint64(1)<<len(h.indices) {
		return nil, &ErrInitialIndexRange{Index: index, NumIndices: len(h.indices)}
	}

	return &InitialState{
		indices: slices.Clone(h.indices),
		kind:    InitialIndex,
		index:   index,
	}, nil
}

// InitFromState builds a full-state-form initial state request from an
// explicit amplitude vector, which must hold exactly 2^n amplitudes for the
// handle's n indices.
func (h *QubitHandle) InitFromState(state []complex128) (*InitialState, error) {
	expected := 1 << len(h.indices)
	if len(state) != expected {
		return nil, &ErrInitialStateSize{Expected: expected, Actual: len(state)}
	}

	return &InitialState{
		indices: slices.Clone(h.indices),
		kind:    InitialFullState,
		state:   slices.Clone(state),
	}, nil
}
