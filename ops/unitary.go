package ops

import (
	"errors"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare is returned when a flat coefficient slice cannot form a
// square matrix.
var ErrNotSquare = errors.New("coefficient count must be a perfect square")

// IsUnitary reports whether the flat row-major matrix data is unitary
// within eps, i.e. whether U^H * U is the identity up to eps per entry.
//
// Useful as a debug check before handing a matrix to NewMatrix: the
// execution engine assumes (but does not verify) that matrix descriptors
// tagged as unitary actually preserve the state-vector norm.
func IsUnitary(data []complex128, eps float64) (bool, error) {
	side := 1
	for side*side < len(data) {
		side++
	}
	if side*side != len(data) || len(data) == 0 {
		return false, ErrNotSquare
	}

	u := mat.NewCDense(side, side, slices.Clone(data))
	uh := u.H()

	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			var sum complex128
			for k := 0; k < side; k++ {
				sum += uh.At(i, k) * u.At(k, j)
			}

			want := complex(0, 0)
			if i == j {
				want = complex(1, 0)
			}
			if cmplx.Abs(sum-want) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// FromCDense flattens a gonum complex matrix into the row-major form
// NewMatrix expects.
func FromCDense(m mat.CMatrix) []complex128 {
	r, c := m.Dims()
	data := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return data
}
