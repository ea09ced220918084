package qcircuit

import (
	"slices"

	"github.com/hupe1980/qcircuit/ops"
)

// ModifierKind distinguishes how a merge modifies the state.
type ModifierKind int

const (
	// ModifierUnitary marks a merge that applies an operator descriptor.
	ModifierUnitary ModifierKind = iota

	// ModifierMeasurement marks a state-collapsing measurement.
	ModifierMeasurement

	// ModifierStochasticMeasurement marks a probability-only measurement
	// that leaves the state untouched.
	ModifierStochasticMeasurement
)

// String returns the kind's wire name.
func (k ModifierKind) String() string {
	switch k {
	case ModifierUnitary:
		return "unitary"
	case ModifierMeasurement:
		return "measure"
	case ModifierStochasticMeasurement:
		return "stochastic"
	default:
		return "unknown"
	}
}

// StateModifier records what a merge did to the state: either a unitary
// operator application, or a measurement marker the execution engine
// resolves into an outcome retrievable by the marker's id. Immutable once
// built.
type StateModifier struct {
	name    string
	kind    ModifierKind
	op      ops.Op   // set for ModifierUnitary
	id      uint64   // measurement handle, set for measurement kinds
	indices []uint64 // measured indices, set for measurement kinds
}

func newUnitaryModifier(name string, op ops.Op) *StateModifier {
	return &StateModifier{
		name: name,
		kind: ModifierUnitary,
		op:   op,
	}
}

func newMeasurementModifier(name string, id uint64, indices []uint64) *StateModifier {
	return &StateModifier{
		name:    name,
		kind:    ModifierMeasurement,
		id:      id,
		indices: slices.Clone(indices),
	}
}

func newStochasticMeasurementModifier(name string, id uint64, indices []uint64) *StateModifier {
	return &StateModifier{
		name:    name,
		kind:    ModifierStochasticMeasurement,
		id:      id,
		indices: slices.Clone(indices),
	}
}

// Name returns the modifier's display name.
func (m *StateModifier) Name() string { return m.name }

// Kind returns the modifier kind.
func (m *StateModifier) Kind() ModifierKind { return m.kind }

// Op returns the applied operator descriptor, or nil for measurement kinds.
func (m *StateModifier) Op() ops.Op { return m.op }

// ID returns the measurement handle for measurement kinds.
func (m *StateModifier) ID() uint64 { return m.id }

// Indices returns the measured indices for measurement kinds.
func (m *StateModifier) Indices() []uint64 { return slices.Clone(m.indices) }
