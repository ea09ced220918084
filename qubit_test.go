package qcircuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQubit(t *testing.T) {
	q, err := newQubit(0, []uint64{0, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), q.ID())
	assert.Equal(t, []uint64{0, 1, 2}, q.Indices())
	assert.Equal(t, 3, q.NumIndices())
	assert.False(t, q.Consumed())

	_, err = newQubit(1, nil)
	assert.ErrorIs(t, err, ErrEmptyQubit)
}

func TestQubitString(t *testing.T) {
	q, err := newQubit(3, []uint64{1, 4})
	require.NoError(t, err)

	assert.Equal(t, "Qubit[3][1, 4]", q.String())
}

func TestMergeWithModifier(t *testing.T) {
	t.Run("sorts indices", func(t *testing.T) {
		qa, err := newQubit(0, []uint64{4, 2})
		require.NoError(t, err)
		qb, err := newQubit(1, []uint64{3, 0})
		require.NoError(t, err)

		merged, err := MergeWithModifier(2, []*Qubit{qa, qb}, nil)
		require.NoError(t, err)

		assert.Equal(t, []uint64{0, 2, 3, 4}, merged.Indices())
		assert.True(t, qa.Consumed())
		assert.True(t, qb.Consumed())

		children, modifier, ok := merged.Owned()
		require.True(t, ok)
		assert.Equal(t, []*Qubit{qa, qb}, children)
		assert.Nil(t, modifier)
	})

	t.Run("no qubits", func(t *testing.T) {
		_, err := MergeWithModifier(0, nil, nil)
		assert.ErrorIs(t, err, ErrNoQubits)
	})

	t.Run("consumed input", func(t *testing.T) {
		qa, err := newQubit(0, []uint64{0})
		require.NoError(t, err)
		_, err = MergeWithModifier(1, []*Qubit{qa}, nil)
		require.NoError(t, err)

		_, err = MergeWithModifier(2, []*Qubit{qa}, nil)
		assert.ErrorIs(t, err, ErrQubitConsumed)
	})

	t.Run("overlapping inputs consume nothing", func(t *testing.T) {
		qa, err := newQubit(0, []uint64{0, 1})
		require.NoError(t, err)
		qb, err := newQubit(1, []uint64{1, 2})
		require.NoError(t, err)

		_, err = MergeWithModifier(2, []*Qubit{qa, qb}, nil)
		var overlapErr *ErrOverlappingQubits
		require.ErrorAs(t, err, &overlapErr)
		assert.Equal(t, uint64(1), overlapErr.Index)

		assert.False(t, qa.Consumed())
		assert.False(t, qb.Consumed())
	})
}

func TestSplitQubitAbsolute(t *testing.T) {
	newParent := func(t *testing.T) *Qubit {
		t.Helper()
		q, err := newQubit(0, []uint64{0, 1, 2, 3})
		require.NoError(t, err)
		return q
	}

	t.Run("partition", func(t *testing.T) {
		q := newParent(t)

		qa, qb, err := SplitQubitAbsolute(1, 2, q, []uint64{2, 0})
		require.NoError(t, err)

		assert.Equal(t, []uint64{2, 0}, qa.Indices())
		assert.Equal(t, []uint64{1, 3}, qb.Indices())
		assert.True(t, q.Consumed())

		// Both siblings share the retired parent.
		pa, ok := qa.Parent()
		require.True(t, ok)
		pb, ok := qb.Parent()
		require.True(t, ok)
		assert.Same(t, q, pa)
		assert.Same(t, q, pb)
	})

	t.Run("disjoint union equals parent", func(t *testing.T) {
		q := newParent(t)

		qa, qb, err := SplitQubitAbsolute(1, 2, q, []uint64{1, 3})
		require.NoError(t, err)

		union := append(qa.Indices(), qb.Indices()...)
		assert.ElementsMatch(t, []uint64{0, 1, 2, 3}, union)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, _, err := SplitQubitAbsolute(1, 2, newParent(t), nil)
		assert.ErrorIs(t, err, ErrNoSplitIndices)
	})

	t.Run("selecting all", func(t *testing.T) {
		_, _, err := SplitQubitAbsolute(1, 2, newParent(t), []uint64{0, 1, 2, 3})
		assert.ErrorIs(t, err, ErrSplitRemainder)
	})

	t.Run("missing index", func(t *testing.T) {
		_, _, err := SplitQubitAbsolute(1, 2, newParent(t), []uint64{7})
		var missingErr *ErrSplitIndexMissing
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, uint64(7), missingErr.Index)
	})

	t.Run("duplicate index", func(t *testing.T) {
		_, _, err := SplitQubitAbsolute(1, 2, newParent(t), []uint64{0, 0})
		var dupErr *ErrDuplicateSplitIndex
		assert.ErrorAs(t, err, &dupErr)
	})

	t.Run("consumed parent", func(t *testing.T) {
		q := newParent(t)
		_, _, err := SplitQubitAbsolute(1, 2, q, []uint64{0})
		require.NoError(t, err)

		_, _, err = SplitQubitAbsolute(3, 4, q, []uint64{1})
		assert.ErrorIs(t, err, ErrQubitConsumed)
	})
}

func TestSplitQubit(t *testing.T) {
	newParent := func(t *testing.T) *Qubit {
		t.Helper()
		q, err := newQubit(0, []uint64{10, 20, 30})
		require.NoError(t, err)
		return q
	}

	t.Run("relative positions select parent indices", func(t *testing.T) {
		qa, qb, err := SplitQubit(1, 2, newParent(t), []uint64{2, 0})
		require.NoError(t, err)

		assert.Equal(t, []uint64{30, 10}, qa.Indices())
		assert.Equal(t, []uint64{20}, qb.Indices())
	})

	t.Run("position out of range", func(t *testing.T) {
		_, _, err := SplitQubit(1, 2, newParent(t), []uint64{3})
		var rangeErr *ErrSplitIndexRange
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, uint64(3), rangeErr.Position)
		assert.Equal(t, 3, rangeErr.Size)
	})

	t.Run("duplicate position", func(t *testing.T) {
		_, _, err := SplitQubit(1, 2, newParent(t), []uint64{1, 1})
		var dupErr *ErrDuplicateSplitIndex
		assert.ErrorAs(t, err, &dupErr)
	})

	t.Run("empty and full selections", func(t *testing.T) {
		_, _, err := SplitQubit(1, 2, newParent(t), nil)
		assert.ErrorIs(t, err, ErrNoSplitIndices)

		_, _, err = SplitQubit(1, 2, newParent(t), []uint64{0, 1, 2})
		assert.ErrorIs(t, err, ErrSplitRemainder)
	})
}

func TestSplitThenMergeRestoresIndexSet(t *testing.T) {
	q, err := newQubit(0, []uint64{5, 1, 9})
	require.NoError(t, err)

	qa, qb, err := SplitQubitAbsolute(1, 2, q, []uint64{9})
	require.NoError(t, err)

	merged, err := MergeWithModifier(3, []*Qubit{qa, qb}, nil)
	require.NoError(t, err)

	// Same index set as the original, reordered to sorted order.
	assert.Equal(t, []uint64{1, 5, 9}, merged.Indices())
}
