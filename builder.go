package qcircuit

import (
	"math"

	"github.com/hupe1980/qcircuit/ops"
)

// Builder is the capability interface shared by the unconditioned OpBuilder
// and the control-gated ConditionedBuilder. A conditioned builder wraps and
// forwards to any other Builder, so controls nest to arbitrary depth.
//
// Operations consume their qubit arguments and hand back fresh qubits with
// new identities; a consumed qubit passed in again yields ErrQubitConsumed.
type Builder interface {
	// WithContext returns a builder whose every operator is additionally
	// controlled on q.
	WithContext(q *Qubit) *ConditionedBuilder

	// Mat applies a dense matrix to q. When q addresses more than one index
	// and data is exactly 2x2, the matrix is broadcast to every index
	// independently; otherwise data must hold 4^n coefficients for q's n
	// indices.
	Mat(q *Qubit, data []complex128) (*Qubit, error)

	// SparseMat applies a sparse matrix to q. No broadcast special case:
	// rows must describe the full 2^n x 2^n operator.
	SparseMat(q *Qubit, rows [][]ops.SparseEntry) (*Qubit, error)

	// Swap exchanges the states of qa and qb, which must address the same
	// number of indices. The returned qubits match the original index
	// partitioning; the physical exchange happens in the operator, not by
	// index relabeling.
	Swap(qa, qb *Qubit) (*Qubit, *Qubit, error)

	// ApplyFunction applies a permutation-with-phase function jointly to
	// qin and qout, returning qubits matching the original partitioning.
	ApplyFunction(qin, qout *Qubit, f ops.PermutationFunc) (*Qubit, *Qubit, error)

	// SplitAbsolute splits q into a qubit holding exactly the selected
	// absolute indices and one holding the remainder.
	SplitAbsolute(q *Qubit, selected []uint64) (*Qubit, *Qubit, error)

	// MergeWithOp merges qs into one qubit, recording op (which may be nil)
	// as the merge's applied operator.
	MergeWithOp(qs []*Qubit, op ops.Op) (*Qubit, error)

	// StochasticMeasure adds a probability-only measurement of q and
	// returns the handle its outcome is retrievable by after a run.
	StochasticMeasure(q *Qubit) (*Qubit, uint64, error)

	// MakeMatOp wraps data with q's current indices into a dense matrix
	// descriptor. A conditioned builder additionally control-wraps it.
	MakeMatOp(q *Qubit, data []complex128) (ops.Op, error)

	// MakeSparseMatOp wraps rows with q's current indices into a sparse
	// matrix descriptor.
	MakeSparseMatOp(q *Qubit, rows [][]ops.SparseEntry) (ops.Op, error)

	// MakeSwapOp builds a swap descriptor over qa's and qb's indices,
	// failing when their sizes differ.
	MakeSwapOp(qa, qb *Qubit) (ops.Op, error)

	// MakeFunctionOp wraps f with qin's and qout's indices into a function
	// descriptor.
	MakeFunctionOp(qin, qout *Qubit, f ops.PermutationFunc) (ops.Op, error)
}

// Fixed single-qubit gate matrices.
var (
	matX = []complex128{0, 1, 1, 0}
	matY = []complex128{0, complex(0, -1), complex(0, 1), 0}
	matZ = []complex128{1, 0, 0, -1}
)

// RealMat applies a dense matrix given as real coefficients. Broadcast
// rules are those of Builder.Mat.
func RealMat(b Builder, q *Qubit, data []float64) (*Qubit, error) {
	cdata := make([]complex128, len(data))
	for i, v := range data {
		cdata[i] = complex(v, 0)
	}
	return b.Mat(q, cdata)
}

// X applies the Pauli-X gate to every index of q.
func X(b Builder, q *Qubit) (*Qubit, error) {
	return b.Mat(q, matX)
}

// Not applies the NOT gate to every index of q. Not is an alias for X.
func Not(b Builder, q *Qubit) (*Qubit, error) {
	return X(b, q)
}

// Y applies the Pauli-Y gate to every index of q.
func Y(b Builder, q *Qubit) (*Qubit, error) {
	return b.Mat(q, matY)
}

// Z applies the Pauli-Z gate to every index of q.
func Z(b Builder, q *Qubit) (*Qubit, error) {
	return b.Mat(q, matZ)
}

// Hadamard applies the Hadamard gate to every index of q.
func Hadamard(b Builder, q *Qubit) (*Qubit, error) {
	invSqrt := 1.0 / math.Sqrt2
	return RealMat(b, q, []float64{invSqrt, invSqrt, invSqrt, -invSqrt})
}

// Merge merges qs into a single qubit without applying an operator.
func Merge(b Builder, qs []*Qubit) (*Qubit, error) {
	return b.MergeWithOp(qs, nil)
}

// Split splits q by relative index positions, one qubit holding the
// indices at the selected positions and one the remainder.
func Split(b Builder, q *Qubit, positions []uint64) (*Qubit, *Qubit, error) {
	if q.Consumed() {
		return nil, nil, ErrQubitConsumed
	}
	if len(positions) == 0 {
		return nil, nil, ErrNoSplitIndices
	}
	if len(positions) == q.NumIndices() {
		return nil, nil, ErrSplitRemainder
	}

	selected := make([]uint64, len(positions))
	for i, pos := range positions {
		if pos >= uint64(q.NumIndices()) {
			return nil, nil, &ErrSplitIndexRange{Position: pos, Size: q.NumIndices()}
		}
		selected[i] = q.indices[pos]
	}

	return b.SplitAbsolute(q, selected)
}

// SplitAbsoluteMany splits off each index group in order, folding the
// remainder forward, and returns the split-off qubits in group order plus
// the final remainder.
func SplitAbsoluteMany(b Builder, q *Qubit, groups [][]uint64) ([]*Qubit, *Qubit, error) {
	qs := make([]*Qubit, 0, len(groups))
	for _, group := range groups {
		head, tail, err := b.SplitAbsolute(q, group)
		if err != nil {
			return nil, nil, err
		}
		qs = append(qs, head)
		q = tail
	}
	return qs, q, nil
}

// SplitAll splits every index of q into its own single-index qubit. The
// last index is returned as the final remainder rather than split off
// redundantly; a single-index qubit is returned unchanged.
func SplitAll(b Builder, q *Qubit) ([]*Qubit, error) {
	if q.Consumed() {
		return nil, ErrQubitConsumed
	}

	groups := make([][]uint64, 0, q.NumIndices()-1)
	for _, index := range q.indices[:len(q.indices)-1] {
		groups = append(groups, []uint64{index})
	}

	// Cannot fail: every group index comes from q itself.
	qs, tail, err := SplitAbsoluteMany(b, q, groups)
	if err != nil {
		return nil, err
	}
	return append(qs, tail), nil
}

// ApplyFunc applies f jointly to qin and qout through b. It exists so plain
// functions and closures can be applied without spelling the
// ops.PermutationFunc conversion.
func ApplyFunc(b Builder, qin, qout *Qubit, f func(uint64) (uint64, float64)) (*Qubit, *Qubit, error) {
	return b.ApplyFunction(qin, qout, f)
}
