package qcircuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/qcircuit/ops"
)

func TestConditionedMat(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	target, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)

	target, err = Not(cb, target)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, target.Indices())

	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())

	// The emitted operator is the control-wrapped matrix.
	parent, ok := target.Parent()
	require.True(t, ok)
	_, modifier, ok := parent.Owned()
	require.True(t, ok)

	cop, ok := modifier.Op().(*ops.Control)
	require.True(t, ok)
	assert.Equal(t, []uint64{0}, cop.ControlIndices())
	assert.Equal(t, "matrix", cop.Child().Kind())
	assert.Equal(t, []uint64{1}, cop.Child().Indices())
}

func TestConditionedMatWrongSize(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	target, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)

	_, err = cb.Mat(target, make([]complex128, 8))
	var sizeErr *ops.ErrMatrixSize
	assert.ErrorAs(t, err, &sizeErr)

	// The control survives the failed operation.
	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())
	assert.False(t, released.Consumed())
}

func TestConditionedBroadcast(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	target, err := b.Qubit(3)
	require.NoError(t, err)

	cb := b.WithContext(control)

	target, err = X(cb, target)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, target.Indices())

	// Each broadcast sub-application is independently controlled.
	children, modifier, ok := target.Owned()
	require.True(t, ok)
	assert.Nil(t, modifier)
	require.Len(t, children, 3)
	for _, child := range children {
		parent, ok := child.Parent()
		require.True(t, ok)
		_, m, ok := parent.Owned()
		require.True(t, ok)
		cop, ok := m.Op().(*ops.Control)
		require.True(t, ok)
		assert.Equal(t, []uint64{0}, cop.ControlIndices())
	}

	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())
}

func TestConditionedSwap(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	qa, err := b.Qubit(2)
	require.NoError(t, err)
	qb, err := b.Qubit(2)
	require.NoError(t, err)

	cb := b.WithContext(control)

	qa2, qb2, err := cb.Swap(qa, qb)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2}, qa2.Indices())
	assert.Equal(t, []uint64{3, 4}, qb2.Indices())

	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())
}

func TestConditionedSwapUnequalSizes(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	qa, err := b.Qubit(2)
	require.NoError(t, err)
	qb, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)

	_, _, err = cb.Swap(qa, qb)
	assert.ErrorIs(t, err, ops.ErrUnequalSwapSize)

	// Control slot still populated after the failed build.
	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())
}

func TestConditionedApplyFunction(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	qin, err := b.Qubit(2)
	require.NoError(t, err)
	qout, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)

	qin2, qout2, err := cb.ApplyFunction(qin, qout, func(x uint64) (uint64, float64) {
		return x & 1, 0
	})
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2}, qin2.Indices())
	assert.Equal(t, []uint64{3}, qout2.Indices())

	released := cb.ReleaseQubit()
	assert.Equal(t, []uint64{0}, released.Indices())
}

func TestConditionedNesting(t *testing.T) {
	b := NewOpBuilder()
	outer, err := b.Qubit(1)
	require.NoError(t, err)
	inner, err := b.Qubit(1)
	require.NoError(t, err)
	target, err := b.Qubit(1)
	require.NoError(t, err)

	cbOuter := b.WithContext(outer)
	cbInner := cbOuter.WithContext(inner)

	target, err = X(cbInner, target)
	require.NoError(t, err)

	// Two levels deep: controlled on both control qubits at once.
	parent, ok := target.Parent()
	require.True(t, ok)
	_, modifier, ok := parent.Owned()
	require.True(t, ok)

	innerCop, ok := modifier.Op().(*ops.Control)
	require.True(t, ok)
	assert.Equal(t, []uint64{1}, innerCop.ControlIndices())

	outerCop, ok := innerCop.Child().(*ops.Control)
	require.True(t, ok)
	assert.Equal(t, []uint64{0}, outerCop.ControlIndices())
	assert.Equal(t, "matrix", outerCop.Child().Kind())

	inner = cbInner.ReleaseQubit()
	assert.Equal(t, []uint64{1}, inner.Indices())
	outer = cbOuter.ReleaseQubit()
	assert.Equal(t, []uint64{0}, outer.Indices())
}

func TestConditionedStochasticMeasureDelegates(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	q, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)

	q, _, err = cb.StochasticMeasure(q)
	require.NoError(t, err)

	// Probability-only measurements bypass the control entirely.
	_, modifier, ok := q.Owned()
	require.True(t, ok)
	assert.Equal(t, ModifierStochasticMeasurement, modifier.Kind())
	assert.Nil(t, modifier.Op())
}

func TestReleaseQubitEmptySlotPanics(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)
	_ = cb.ReleaseQubit()

	assert.Panics(t, func() {
		_ = cb.ReleaseQubit()
	})
}

func TestMakeOpEmptySlotPanics(t *testing.T) {
	b := NewOpBuilder()
	control, err := b.Qubit(1)
	require.NoError(t, err)
	target, err := b.Qubit(1)
	require.NoError(t, err)

	cb := b.WithContext(control)
	_ = cb.ReleaseQubit()

	assert.Panics(t, func() {
		_, _ = cb.MakeMatOp(target, []complex128{0, 1, 1, 0})
	})
}
