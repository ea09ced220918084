package qcircuit

import (
	"github.com/hupe1980/qcircuit/ops"
)

// ConditionedBuilder wraps any Builder and holds exactly one control qubit.
// Every operator it emits is rewritten into a control-gated form keyed off
// that qubit: the control is taken out of its slot for the duration of each
// operation, merged with the operands under a Control-wrapped descriptor,
// split back off and re-stored.
//
// Nesting via WithContext composes controls with AND semantics: an operator
// built two levels deep is controlled on both control qubits at once.
//
// The control slot being empty outside an in-flight operation indicates a
// reentrancy bug in the caller's sequencing; the builder panics rather than
// returning an error in that case.
type ConditionedBuilder struct {
	parent  Builder
	control *Qubit
}

var _ Builder = (*ConditionedBuilder)(nil)

// ReleaseQubit returns the held control qubit to the caller, ending the
// conditional scope. It panics when the control slot is empty.
func (b *ConditionedBuilder) ReleaseQubit() *Qubit {
	if b.control == nil {
		panic("qcircuit: conditioned builder control slot is empty")
	}

	q := b.control
	b.control = nil
	return q
}

func (b *ConditionedBuilder) takeControl() *Qubit {
	if b.control == nil {
		panic("qcircuit: conditioned builder control slot is empty")
	}

	q := b.control
	b.control = nil
	return q
}

// WithContext nests another conditional scope inside this one.
func (b *ConditionedBuilder) WithContext(q *Qubit) *ConditionedBuilder {
	return &ConditionedBuilder{
		parent:  b,
		control: q,
	}
}

// Mat applies a dense matrix to q, controlled on the held qubit. The 2x2
// broadcast special case recurses through this builder, so every broadcast
// sub-application is independently controlled.
func (b *ConditionedBuilder) Mat(q *Qubit, data []complex128) (*Qubit, error) {
	if isBroadcast(q, data) {
		return broadcastMat(b, q, data)
	}

	op, err := b.MakeMatOp(q, data)
	if err != nil {
		return nil, err
	}

	return b.applyControlled(op, q)
}

// SparseMat applies a sparse matrix to q, controlled on the held qubit.
func (b *ConditionedBuilder) SparseMat(q *Qubit, rows [][]ops.SparseEntry) (*Qubit, error) {
	op, err := b.MakeSparseMatOp(q, rows)
	if err != nil {
		return nil, err
	}

	return b.applyControlled(op, q)
}

// Swap exchanges the states of qa and qb, controlled on the held qubit.
func (b *ConditionedBuilder) Swap(qa, qb *Qubit) (*Qubit, *Qubit, error) {
	op, err := b.MakeSwapOp(qa, qb)
	if err != nil {
		return nil, nil, err
	}

	aIndices := qa.Indices()
	merged, err := b.applyControlledMerge(op, qa, qb)
	if err != nil {
		return nil, nil, err
	}

	return b.SplitAbsolute(merged, aIndices)
}

// ApplyFunction applies a permutation-with-phase function jointly to qin
// and qout, controlled on the held qubit.
func (b *ConditionedBuilder) ApplyFunction(qin, qout *Qubit, f ops.PermutationFunc) (*Qubit, *Qubit, error) {
	op, err := b.MakeFunctionOp(qin, qout, f)
	if err != nil {
		return nil, nil, err
	}

	inIndices := qin.Indices()
	merged, err := b.applyControlledMerge(op, qin, qout)
	if err != nil {
		return nil, nil, err
	}

	return b.SplitAbsolute(merged, inIndices)
}

// SplitAbsolute delegates to the parent builder, which owns the identity
// counter.
func (b *ConditionedBuilder) SplitAbsolute(q *Qubit, selected []uint64) (*Qubit, *Qubit, error) {
	return b.parent.SplitAbsolute(q, selected)
}

// MergeWithOp delegates to the parent builder. The op is recorded as given;
// control wrapping happens in the Make*Op factories.
func (b *ConditionedBuilder) MergeWithOp(qs []*Qubit, op ops.Op) (*Qubit, error) {
	return b.parent.MergeWithOp(qs, op)
}

// StochasticMeasure delegates to the parent builder; probability-only
// measurements are not control-gated.
func (b *ConditionedBuilder) StochasticMeasure(q *Qubit) (*Qubit, uint64, error) {
	return b.parent.StochasticMeasure(q)
}

// MakeMatOp builds the parent's dense matrix descriptor and wraps it with
// the held control indices. Panics when the control slot is empty.
func (b *ConditionedBuilder) MakeMatOp(q *Qubit, data []complex128) (ops.Op, error) {
	op, err := b.parent.MakeMatOp(q, data)
	if err != nil {
		return nil, err
	}
	return b.controlWrap(op)
}

// MakeSparseMatOp builds the parent's sparse matrix descriptor and wraps it
// with the held control indices.
func (b *ConditionedBuilder) MakeSparseMatOp(q *Qubit, rows [][]ops.SparseEntry) (ops.Op, error) {
	op, err := b.parent.MakeSparseMatOp(q, rows)
	if err != nil {
		return nil, err
	}
	return b.controlWrap(op)
}

// MakeSwapOp builds the parent's swap descriptor and wraps it with the held
// control indices.
func (b *ConditionedBuilder) MakeSwapOp(qa, qb *Qubit) (ops.Op, error) {
	op, err := b.parent.MakeSwapOp(qa, qb)
	if err != nil {
		return nil, err
	}
	return b.controlWrap(op)
}

// MakeFunctionOp builds the parent's function descriptor and wraps it with
// the held control indices.
func (b *ConditionedBuilder) MakeFunctionOp(qin, qout *Qubit, f ops.PermutationFunc) (ops.Op, error) {
	op, err := b.parent.MakeFunctionOp(qin, qout, f)
	if err != nil {
		return nil, err
	}
	return b.controlWrap(op)
}

func (b *ConditionedBuilder) controlWrap(op ops.Op) (ops.Op, error) {
	if b.control == nil {
		panic("qcircuit: conditioned builder control slot is empty")
	}
	return ops.NewControl(b.control.Indices(), op)
}

// applyControlled merges the control with a single operand under op, splits
// the control back out and returns the operand's successor qubit.
func (b *ConditionedBuilder) applyControlled(op ops.Op, q *Qubit) (*Qubit, error) {
	cq := b.takeControl()
	cqIndices := cq.Indices()

	merged, err := b.MergeWithOp([]*Qubit{cq, q}, op)
	if err != nil {
		b.control = cq
		return nil, err
	}

	cq, q, err = b.SplitAbsolute(merged, cqIndices)
	if err != nil {
		return nil, err
	}

	b.control = cq
	return q, nil
}

// applyControlledMerge merges the control with two operands under op and
// splits the control back out, returning the merged operand pair.
func (b *ConditionedBuilder) applyControlledMerge(op ops.Op, qa, qb *Qubit) (*Qubit, error) {
	cq := b.takeControl()
	cqIndices := cq.Indices()

	merged, err := b.MergeWithOp([]*Qubit{cq, qa, qb}, op)
	if err != nil {
		b.control = cq
		return nil, err
	}

	cq, rest, err := b.SplitAbsolute(merged, cqIndices)
	if err != nil {
		return nil, err
	}

	b.control = cq
	return rest, nil
}
