package qcircuit

import (
	"context"
	"slices"
)

// InitialStateKind distinguishes the two initial-state request forms.
type InitialStateKind int

const (
	// InitialIndex selects a single basis state by index.
	InitialIndex InitialStateKind = iota

	// InitialFullState supplies an explicit amplitude vector.
	InitialFullState
)

// InitialState is a validated initial-state request for the indices of one
// qubit handle. Build one through QubitHandle.InitFromIndex or
// QubitHandle.InitFromState.
type InitialState struct {
	indices []uint64
	kind    InitialStateKind
	index   uint64
	state   []complex128
}

// Indices returns the absolute indices the request covers.
func (s *InitialState) Indices() []uint64 { return slices.Clone(s.indices) }

// Kind returns the request form.
func (s *InitialState) Kind() InitialStateKind { return s.kind }

// Index returns the basis-state index for InitialIndex requests.
func (s *InitialState) Index() uint64 { return s.index }

// State returns the amplitude vector for InitialFullState requests.
func (s *InitialState) State() []complex128 { return slices.Clone(s.state) }

// RunResult exposes measurement outcomes after an engine run, keyed by the
// handle returned from Measure or StochasticMeasure.
type RunResult interface {
	// Measured returns the collapsed outcome recorded for handle.
	Measured(handle uint64) (outcome uint64, ok bool)

	// StochasticMeasured returns the per-basis-state probabilities
	// recorded for handle.
	StochasticMeasured(handle uint64) (probabilities []float64, ok bool)
}

// Engine applies a finished operation graph to a complex state vector and
// resolves measurement outcomes. Implementations live outside this module;
// the contract they must honor is:
//
//   - Allocate a 2^N-amplitude state vector, where N is the total number of
//     absolute indices the builder ever allocated.
//   - Walk q's lineage to the graph's roots and apply each operator
//     descriptor in merge order as a local tensor contraction at its
//     absolute indices, relying on the sorted index layout of merged qubits.
//   - Seed amplitudes from the initial-state requests before applying any
//     operator; unmentioned indices start in basis state zero.
//   - Resolve every measurement modifier into an outcome retrievable from
//     the RunResult by the modifier's id.
type Engine interface {
	Run(ctx context.Context, q *Qubit, initial []*InitialState) (RunResult, error)
}
