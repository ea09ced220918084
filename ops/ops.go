package ops

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// PermutationFunc maps a basis-state index to a new index and a phase angle
// (radians). Implementations must be total, deterministic and free of
// captured mutable state: the execution engine may invoke them repeatedly
// and from its own concurrency model.
type PermutationFunc func(index uint64) (uint64, float64)

// SparseEntry is one (column, coefficient) pair of a sparse matrix row.
type SparseEntry struct {
	Col uint64
	Val complex128
}

// Op is an immutable operator descriptor. The variant set is closed:
// Matrix, Sparse, Swap, Function and Control.
type Op interface {
	// Kind returns the variant name ("matrix", "sparse", "swap",
	// "function" or "control").
	Kind() string

	// Indices returns a copy of every absolute index the descriptor
	// references, in variant order.
	Indices() []uint64

	// NumIndices returns the total index count of the descriptor. The
	// execution engine uses it to size its working tensor.
	NumIndices() int

	fmt.Stringer

	isOp()
}

// Matrix is a dense operator: n indices plus a flat row-major matrix of
// 4^n complex coefficients.
type Matrix struct {
	indices []uint64
	data    []complex128
}

// NewMatrix builds a dense matrix descriptor acting on indices. The data
// slice must hold exactly 4^n coefficients for n indices.
func NewMatrix(indices []uint64, data []complex128) (*Matrix, error) {
	if len(indices) == 0 {
		return nil, ErrNoIndices
	}

	expected := 1 << (2 * len(indices))
	if len(data) != expected {
		return nil, &ErrMatrixSize{NumIndices: len(indices), Expected: expected, Actual: len(data)}
	}

	return &Matrix{
		indices: slices.Clone(indices),
		data:    slices.Clone(data),
	}, nil
}

func (o *Matrix) Kind() string { return "matrix" }

func (o *Matrix) Indices() []uint64 { return slices.Clone(o.indices) }

func (o *Matrix) NumIndices() int { return len(o.indices) }

// Coefficients returns the flat row-major matrix data.
func (o *Matrix) Coefficients() []complex128 { return slices.Clone(o.data) }

func (o *Matrix) String() string { return "Matrix[" + joinIndices(o.indices) + "]" }

func (o *Matrix) isOp() {}

// Sparse is a sparse operator: n indices plus, per output row, a sparse
// list of (column, coefficient) pairs.
type Sparse struct {
	indices []uint64
	rows    [][]SparseEntry
}

// NewSparse builds a sparse matrix descriptor acting on indices. There must
// be exactly 2^n rows and every column must be below 2^n.
func NewSparse(indices []uint64, rows [][]SparseEntry) (*Sparse, error) {
	if len(indices) == 0 {
		return nil, ErrNoIndices
	}

	side := uint64(1) << len(indices)
	if uint64(len(rows)) != side {
		return nil, &ErrSparseRowCount{Expected: int(side), Actual: len(rows)}
	}

	for i, row := range rows {
		for _, entry := range row {
			if entry.Col >= side {
				return nil, &ErrSparseColumnRange{Row: i, Col: entry.Col, Limit: side}
			}
		}
	}

	cloned := make([][]SparseEntry, len(rows))
	for i, row := range rows {
		cloned[i] = slices.Clone(row)
	}

	return &Sparse{
		indices: slices.Clone(indices),
		rows:    cloned,
	}, nil
}

func (o *Sparse) Kind() string { return "sparse" }

func (o *Sparse) Indices() []uint64 { return slices.Clone(o.indices) }

func (o *Sparse) NumIndices() int { return len(o.indices) }

// Rows returns the per-row sparse entries.
func (o *Sparse) Rows() [][]SparseEntry {
	rows := make([][]SparseEntry, len(o.rows))
	for i, row := range o.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

func (o *Sparse) String() string { return "SparseMatrix[" + joinIndices(o.indices) + "]" }

func (o *Sparse) isOp() {}

// Swap exchanges the amplitudes addressed by two disjoint, equal-length
// index groups.
type Swap struct {
	a []uint64
	b []uint64
}

// NewSwap builds a swap descriptor from two index groups. The groups must
// be non-empty, of equal length and disjoint.
func NewSwap(a, b []uint64) (*Swap, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrNoIndices
	}
	if len(a) != len(b) {
		return nil, ErrUnequalSwapSize
	}
	if err := checkDisjoint(a, b); err != nil {
		return nil, err
	}

	return &Swap{
		a: slices.Clone(a),
		b: slices.Clone(b),
	}, nil
}

func (o *Swap) Kind() string { return "swap" }

func (o *Swap) Indices() []uint64 {
	indices := make([]uint64, 0, len(o.a)+len(o.b))
	indices = append(indices, o.a...)
	return append(indices, o.b...)
}

func (o *Swap) NumIndices() int { return len(o.a) + len(o.b) }

// A returns the first index group.
func (o *Swap) A() []uint64 { return slices.Clone(o.a) }

// B returns the second index group.
func (o *Swap) B() []uint64 { return slices.Clone(o.b) }

func (o *Swap) String() string { return "Swap[" + joinIndices(o.Indices()) + "]" }

func (o *Swap) isOp() {}

// Function is a deterministic permutation-with-phase acting jointly on the
// combined index space of its input and output groups: it maps
// c|in>|out> to c*e^(i*theta)|in>|out ^ x> where (x, theta) = f(in).
type Function struct {
	in  []uint64
	out []uint64
	f   PermutationFunc
}

// NewFunction builds a function descriptor from input/output index groups
// and a total, deterministic permutation function.
func NewFunction(in, out []uint64, f PermutationFunc) (*Function, error) {
	if len(in) == 0 || len(out) == 0 {
		return nil, ErrNoIndices
	}
	if f == nil {
		return nil, ErrNilFunction
	}
	if err := checkDisjoint(in, out); err != nil {
		return nil, err
	}

	return &Function{
		in:  slices.Clone(in),
		out: slices.Clone(out),
		f:   f,
	}, nil
}

func (o *Function) Kind() string { return "function" }

func (o *Function) Indices() []uint64 {
	indices := make([]uint64, 0, len(o.in)+len(o.out))
	indices = append(indices, o.in...)
	return append(indices, o.out...)
}

func (o *Function) NumIndices() int { return len(o.in) + len(o.out) }

// In returns the input index group.
func (o *Function) In() []uint64 { return slices.Clone(o.in) }

// Out returns the output index group.
func (o *Function) Out() []uint64 { return slices.Clone(o.out) }

// Func returns the permutation function.
func (o *Function) Func() PermutationFunc { return o.f }

func (o *Function) String() string { return "Function[" + joinIndices(o.Indices()) + "]" }

func (o *Function) isOp() {}

// Control gates a child descriptor on a set of control indices: the child
// applies only where every control index is set. Control and target index
// sets are disjoint.
type Control struct {
	controls []uint64
	child    Op
}

// NewControl wraps child so it applies only where every control index is
// set. The control indices must be non-empty and disjoint from the child's
// own indices.
func NewControl(controls []uint64, child Op) (*Control, error) {
	if child == nil {
		return nil, ErrNilChild
	}
	if len(controls) == 0 {
		return nil, ErrNoControls
	}
	if err := checkDisjoint(controls, child.Indices()); err != nil {
		return nil, err
	}

	return &Control{
		controls: slices.Clone(controls),
		child:    child,
	}, nil
}

func (o *Control) Kind() string { return "control" }

func (o *Control) Indices() []uint64 {
	targets := o.child.Indices()
	indices := make([]uint64, 0, len(o.controls)+len(targets))
	indices = append(indices, o.controls...)
	return append(indices, targets...)
}

func (o *Control) NumIndices() int { return len(o.controls) + o.child.NumIndices() }

// ControlIndices returns the control index group.
func (o *Control) ControlIndices() []uint64 { return slices.Clone(o.controls) }

// Child returns the wrapped descriptor.
func (o *Control) Child() Op { return o.child }

func (o *Control) String() string {
	return "C(" + o.child.String() + ")[" + joinIndices(o.controls) + "]"
}

func (o *Control) isOp() {}

// checkDisjoint returns an ErrOverlappingIndices naming the first index
// shared between a and b, or nil when the groups are disjoint.
func checkDisjoint(a, b []uint64) error {
	set := roaring64.New()
	set.AddMany(a)
	for _, index := range b {
		if set.Contains(index) {
			return &ErrOverlappingIndices{Index: index}
		}
	}
	return nil
}

func joinIndices(indices []uint64) string {
	parts := make([]string, len(indices))
	for i, index := range indices {
		parts[i] = fmt.Sprintf("%d", index)
	}
	return strings.Join(parts, ", ")
}
