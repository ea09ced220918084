package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestIsUnitary(t *testing.T) {
	invSqrt := complex(1/math.Sqrt2, 0)

	t.Run("hadamard", func(t *testing.T) {
		ok, err := IsUnitary([]complex128{invSqrt, invSqrt, invSqrt, -invSqrt}, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("pauli y", func(t *testing.T) {
		ok, err := IsUnitary([]complex128{0, complex(0, -1), complex(0, 1), 0}, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("phase gate", func(t *testing.T) {
		ok, err := IsUnitary([]complex128{1, 0, 0, complex(0, 1)}, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("cnot 4x4", func(t *testing.T) {
		ok, err := IsUnitary([]complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		}, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-unitary", func(t *testing.T) {
		ok, err := IsUnitary([]complex128{1, 1, 1, 1}, 1e-12)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("scaled hadamard", func(t *testing.T) {
		half := invSqrt / 2
		ok, err := IsUnitary([]complex128{half, half, half, -half}, 1e-12)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("not square", func(t *testing.T) {
		_, err := IsUnitary(make([]complex128, 5), 1e-12)
		assert.ErrorIs(t, err, ErrNotSquare)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := IsUnitary(nil, 1e-12)
		assert.ErrorIs(t, err, ErrNotSquare)
	})
}

func TestFromCDense(t *testing.T) {
	m := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})

	data := FromCDense(m)
	assert.Equal(t, []complex128{1, 2, 3, 4}, data)

	op, err := NewMatrix([]uint64{7}, data)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2, 3, 4}, op.Coefficients())
}
