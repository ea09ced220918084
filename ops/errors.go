package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIndices is returned when a descriptor is built without indices.
	ErrNoIndices = errors.New("op must act on at least one index")

	// ErrUnequalSwapSize is returned when a swap is built from two index
	// groups of different sizes.
	ErrUnequalSwapSize = errors.New("swap must be made from two qubits of equal size")

	// ErrNilFunction is returned when a function op is built without a function.
	ErrNilFunction = errors.New("function op requires a non-nil function")

	// ErrNilChild is returned when a control op is built without a child op.
	ErrNilChild = errors.New("control op requires a non-nil child op")

	// ErrNoControls is returned when a control op is built without control indices.
	ErrNoControls = errors.New("control op requires at least one control index")
)

// ErrMatrixSize indicates a dense matrix whose coefficient count does not
// match 4^n for the n indices it should act on.
type ErrMatrixSize struct {
	NumIndices int
	Expected   int
	Actual     int
}

func (e *ErrMatrixSize) Error() string {
	return fmt.Sprintf("matrix for %d indices must have %d coefficients, got %d", e.NumIndices, e.Expected, e.Actual)
}

// ErrSparseColumnRange indicates a sparse matrix entry whose column lies
// outside the 2^n columns of the operator.
type ErrSparseColumnRange struct {
	Row   int
	Col   uint64
	Limit uint64
}

func (e *ErrSparseColumnRange) Error() string {
	return fmt.Sprintf("sparse entry in row %d has column %d, must be below %d", e.Row, e.Col, e.Limit)
}

// ErrSparseRowCount indicates a sparse matrix built with a row count other
// than the 2^n output rows of the operator.
type ErrSparseRowCount struct {
	Expected int
	Actual   int
}

func (e *ErrSparseRowCount) Error() string {
	return fmt.Sprintf("sparse matrix must have %d rows, got %d", e.Expected, e.Actual)
}

// ErrOverlappingIndices indicates two index groups that must be disjoint
// but share an index (swap sides, or control and target sets).
type ErrOverlappingIndices struct {
	Index uint64
}

func (e *ErrOverlappingIndices) Error() string {
	return fmt.Sprintf("index groups must be disjoint, index %d appears in both", e.Index)
}
