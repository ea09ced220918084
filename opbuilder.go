package qcircuit

import (
	"github.com/hupe1980/qcircuit/ops"
)

// OpBuilder is the unconditioned builder: it allocates fresh absolute index
// ranges, assigns monotonically increasing identities and grows the
// operation graph strictly forward. Counters are never reused or reset.
//
// An OpBuilder is single-threaded and call-order-deterministic; it is not
// safe for concurrent use.
type OpBuilder struct {
	qubitIndex uint64
	opID       uint64

	logger  *Logger
	metrics MetricsCollector
}

var _ Builder = (*OpBuilder)(nil)

// NewOpBuilder creates a new OpBuilder.
func NewOpBuilder(optFns ...Option) *OpBuilder {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &OpBuilder{
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

func (b *OpBuilder) nextID() uint64 {
	id := b.opID
	b.opID++
	return id
}

// NextQubitIndex returns the next free absolute index, which equals the
// total number of indices allocated so far. The execution engine sizes its
// state vector as 2^N with N this value.
func (b *OpBuilder) NextQubitIndex() uint64 { return b.qubitIndex }

// Qubit reserves n fresh absolute indices and returns a new qubit
// addressing them. Fails when n is zero.
func (b *OpBuilder) Qubit(n uint64) (*Qubit, error) {
	if n == 0 {
		b.metrics.RecordQubit(0, ErrEmptyQubit)
		b.logger.LogQubit(0, 0, 0, ErrEmptyQubit)
		return nil, ErrEmptyQubit
	}

	base := b.qubitIndex
	b.qubitIndex += n

	indices := make([]uint64, n)
	for i := range indices {
		indices[i] = base + uint64(i)
	}

	q, err := newQubit(b.nextID(), indices)
	b.metrics.RecordQubit(int(n), err)
	if err != nil {
		return nil, err
	}

	b.logger.LogQubit(q.id, base, n, nil)
	return q, nil
}

// QubitAndHandle reserves n fresh absolute indices and returns the new
// qubit plus a handle for feeding in an initial state.
func (b *OpBuilder) QubitAndHandle(n uint64) (*Qubit, *QubitHandle, error) {
	q, err := b.Qubit(n)
	if err != nil {
		return nil, nil, err
	}
	return q, q.Handle(), nil
}

// WithContext returns a builder whose every operator is additionally
// controlled on q.
func (b *OpBuilder) WithContext(q *Qubit) *ConditionedBuilder {
	return &ConditionedBuilder{
		parent:  b,
		control: q,
	}
}

// Mat applies a dense matrix to q, broadcasting a 2x2 matrix across a
// multi-index qubit.
func (b *OpBuilder) Mat(q *Qubit, data []complex128) (*Qubit, error) {
	if isBroadcast(q, data) {
		return broadcastMat(b, q, data)
	}

	op, err := b.MakeMatOp(q, data)
	if err != nil {
		return nil, err
	}

	return b.MergeWithOp([]*Qubit{q}, op)
}

// SparseMat applies a sparse matrix to q.
func (b *OpBuilder) SparseMat(q *Qubit, rows [][]ops.SparseEntry) (*Qubit, error) {
	op, err := b.MakeSparseMatOp(q, rows)
	if err != nil {
		return nil, err
	}
	return b.MergeWithOp([]*Qubit{q}, op)
}

// Swap exchanges the states of qa and qb and returns two qubits matching
// the pre-swap index partitioning.
func (b *OpBuilder) Swap(qa, qb *Qubit) (*Qubit, *Qubit, error) {
	op, err := b.MakeSwapOp(qa, qb)
	if err != nil {
		return nil, nil, err
	}

	aIndices := qa.Indices()
	merged, err := b.MergeWithOp([]*Qubit{qa, qb}, op)
	if err != nil {
		return nil, nil, err
	}

	return b.SplitAbsolute(merged, aIndices)
}

// ApplyFunction applies a permutation-with-phase function jointly to qin
// and qout and returns two qubits matching the original partitioning.
func (b *OpBuilder) ApplyFunction(qin, qout *Qubit, f ops.PermutationFunc) (*Qubit, *Qubit, error) {
	op, err := b.MakeFunctionOp(qin, qout, f)
	if err != nil {
		return nil, nil, err
	}

	inIndices := qin.Indices()
	merged, err := b.MergeWithOp([]*Qubit{qin, qout}, op)
	if err != nil {
		return nil, nil, err
	}

	return b.SplitAbsolute(merged, inIndices)
}

// SplitAbsolute splits q into a qubit holding exactly the selected absolute
// indices and one holding the remainder, both with fresh identities.
func (b *OpBuilder) SplitAbsolute(q *Qubit, selected []uint64) (*Qubit, *Qubit, error) {
	qa, qb, err := SplitQubitAbsolute(b.nextID(), b.nextID(), q, selected)
	b.metrics.RecordSplit(err)
	return qa, qb, err
}

// MergeWithOp merges qs under the given operator descriptor, which may be
// nil for a plain merge.
func (b *OpBuilder) MergeWithOp(qs []*Qubit, op ops.Op) (*Qubit, error) {
	var modifier *StateModifier
	if op != nil {
		modifier = newUnitaryModifier("unitary", op)
	}

	q, err := MergeWithModifier(b.nextID(), qs, modifier)
	if op != nil {
		b.metrics.RecordOp(op.Kind(), err)
		b.logger.LogOp(op.Kind(), op.NumIndices(), err)
	} else {
		b.metrics.RecordMerge(len(qs), err)
	}
	return q, err
}

// MakeMatOp wraps data with q's current indices into a dense matrix
// descriptor. Sizing is validated here; the broadcast special case belongs
// to Mat.
func (b *OpBuilder) MakeMatOp(q *Qubit, data []complex128) (ops.Op, error) {
	return ops.NewMatrix(q.Indices(), data)
}

// MakeSparseMatOp wraps rows with q's current indices into a sparse matrix
// descriptor.
func (b *OpBuilder) MakeSparseMatOp(q *Qubit, rows [][]ops.SparseEntry) (ops.Op, error) {
	return ops.NewSparse(q.Indices(), rows)
}

// MakeSwapOp builds a swap descriptor over qa's and qb's indices. Fails
// when the two do not address the same number of indices.
func (b *OpBuilder) MakeSwapOp(qa, qb *Qubit) (ops.Op, error) {
	return ops.NewSwap(qa.Indices(), qb.Indices())
}

// MakeFunctionOp wraps f with qin's and qout's indices into a function
// descriptor.
func (b *OpBuilder) MakeFunctionOp(qin, qout *Qubit, f ops.PermutationFunc) (ops.Op, error) {
	return ops.NewFunction(qin.Indices(), qout.Indices(), f)
}

// Measure adds a state-collapsing measurement of q. It returns the new
// qubit and the handle by which the outcome is retrievable from the
// execution engine's results.
func (b *OpBuilder) Measure(q *Qubit) (*Qubit, uint64, error) {
	id := b.nextID()
	modifier := newMeasurementModifier("measure", id, q.Indices())

	merged, err := MergeWithModifier(id, []*Qubit{q}, modifier)
	if err != nil {
		return nil, 0, err
	}

	b.metrics.RecordMeasurement("measure")
	b.logger.LogMeasurement("measure", id, merged.NumIndices())
	return merged, id, nil
}

// StochasticMeasure adds a probability-only measurement of q: the state is
// not collapsed, and the engine records the basis-state probabilities
// instead of an outcome.
func (b *OpBuilder) StochasticMeasure(q *Qubit) (*Qubit, uint64, error) {
	id := b.nextID()
	modifier := newStochasticMeasurementModifier("stochastic", id, q.Indices())

	merged, err := MergeWithModifier(id, []*Qubit{q}, modifier)
	if err != nil {
		return nil, 0, err
	}

	b.metrics.RecordMeasurement("stochastic")
	b.logger.LogMeasurement("stochastic", id, merged.NumIndices())
	return merged, id, nil
}

// isBroadcast reports whether Mat should broadcast: a 2x2 matrix applied
// to a qubit addressing more than one index.
func isBroadcast(q *Qubit, data []complex128) bool {
	return q.NumIndices() > 1 && len(data) == 4
}

// broadcastMat applies a 2x2 matrix to every index of q independently and
// re-merges. It goes through b's own Mat, so under a conditioned builder
// each sub-application is independently controlled. Re-merge order does not
// affect correctness since merging sorts indices.
func broadcastMat(b Builder, q *Qubit, data []complex128) (*Qubit, error) {
	qs, err := SplitAll(b, q)
	if err != nil {
		return nil, err
	}

	applied := make([]*Qubit, len(qs))
	for i, piece := range qs {
		applied[i], err = b.Mat(piece, data)
		if err != nil {
			return nil, err
		}
	}

	return b.MergeWithOp(applied, nil)
}
