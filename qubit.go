package qcircuit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/bits-and-blooms/bitset"
)

// Qubit is a logical handle over a set of absolute state-vector indices,
// together with a record of how it was derived. A qubit is immutable once
// built and is consumed exactly once, when passed into a merge, split,
// measure or conditioning operation; further use returns ErrQubitConsumed.
//
// Qubits compare by ID only: the builder assigns monotonically increasing
// identities and never reuses them.
type Qubit struct {
	id       uint64
	indices  []uint64
	lineage  lineage
	consumed bool
}

// lineage records the provenance of a qubit: an owned merge of consumed
// child qubits, or a shared split from a retired parent.
type lineage interface {
	isLineage()
}

type ownedLineage struct {
	children []*Qubit
	modifier *StateModifier
}

func (ownedLineage) isLineage() {}

// sharedLineage keeps the retired parent reachable from both split
// siblings; its storage lives exactly as long as the longer-lived child.
type sharedLineage struct {
	parent *Qubit
}

func (sharedLineage) isLineage() {}

func newQubit(id uint64, indices []uint64) (*Qubit, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyQubit
	}
	return &Qubit{
		id:      id,
		indices: indices,
	}, nil
}

// ID returns the qubit's unique identity.
func (q *Qubit) ID() uint64 { return q.id }

// Indices returns a copy of the absolute indices this qubit addresses.
func (q *Qubit) Indices() []uint64 { return slices.Clone(q.indices) }

// NumIndices returns the number of absolute indices this qubit addresses.
func (q *Qubit) NumIndices() int { return len(q.indices) }

// Consumed reports whether the qubit was already passed into a merge,
// split, measure or conditioning operation.
func (q *Qubit) Consumed() bool { return q.consumed }

// Handle returns a read-only view of the qubit's indices for constructing
// initial-state requests. The handle grants no mutation rights and stays
// valid after the qubit is consumed.
func (q *Qubit) Handle() *QubitHandle {
	return &QubitHandle{indices: slices.Clone(q.indices)}
}

// Owned returns the consumed child qubits and optional modifier when the
// qubit was formed by a merge. ok is false for freshly allocated qubits and
// split results.
func (q *Qubit) Owned() (children []*Qubit, modifier *StateModifier, ok bool) {
	if l, isOwned := q.lineage.(ownedLineage); isOwned {
		return l.children, l.modifier, true
	}
	return nil, nil, false
}

// Parent returns the retired parent when the qubit was split off from one.
func (q *Qubit) Parent() (*Qubit, bool) {
	if l, isShared := q.lineage.(sharedLineage); isShared {
		return l.parent, true
	}
	return nil, false
}

// String renders the qubit as Qubit[id][indices...].
func (q *Qubit) String() string {
	parts := make([]string, len(q.indices))
	for i, index := range q.indices {
		parts[i] = fmt.Sprintf("%d", index)
	}
	return fmt.Sprintf("Qubit[%d][%s]", q.id, strings.Join(parts, ", "))
}

// MergeWithModifier concatenates and sorts the absolute indices of qubits
// into a new qubit with the given id, consuming the inputs and recording
// the optional modifier. Sorted index order is the contract the execution
// engine relies on for deterministic tensor-index layout.
//
// The inputs must be unconsumed and pairwise disjoint; nothing is consumed
// when an error is returned.
func MergeWithModifier(id uint64, qubits []*Qubit, modifier *StateModifier) (*Qubit, error) {
	if len(qubits) == 0 {
		return nil, ErrNoQubits
	}

	seen := roaring64.New()
	var all []uint64
	for _, q := range qubits {
		if q.consumed {
			return nil, ErrQubitConsumed
		}
		for _, index := range q.indices {
			if seen.Contains(index) {
				return nil, &ErrOverlappingQubits{Index: index}
			}
			seen.Add(index)
		}
		all = append(all, q.indices...)
	}
	slices.Sort(all)

	for _, q := range qubits {
		q.consumed = true
	}

	return &Qubit{
		id:      id,
		indices: all,
		lineage: ownedLineage{children: qubits, modifier: modifier},
	}, nil
}

// SplitQubit partitions q by relative index positions: the first result
// holds the indices at the selected positions, the second the remainder.
// Both children share the retired parent. Fails when the selection is
// empty, selects every position, repeats a position, or names a position at
// or beyond q's index count.
func SplitQubit(ida, idb uint64, q *Qubit, positions []uint64) (*Qubit, *Qubit, error) {
	if q.consumed {
		return nil, nil, ErrQubitConsumed
	}
	if len(positions) == 0 {
		return nil, nil, ErrNoSplitIndices
	}
	if len(positions) == len(q.indices) {
		return nil, nil, ErrSplitRemainder
	}

	seen := bitset.New(uint(len(q.indices)))
	selected := make([]uint64, len(positions))
	for i, pos := range positions {
		if pos >= uint64(len(q.indices)) {
			return nil, nil, &ErrSplitIndexRange{Position: pos, Size: len(q.indices)}
		}
		if seen.Test(uint(pos)) {
			return nil, nil, &ErrDuplicateSplitIndex{Index: pos}
		}
		seen.Set(uint(pos))
		selected[i] = q.indices[pos]
	}

	return SplitQubitAbsolute(ida, idb, q, selected)
}

// SplitQubitAbsolute partitions q by absolute indices: the first result
// holds exactly the selected indices, the second the remainder in parent
// order. Both children share the retired parent, whose storage survives as
// long as the longer-lived of the two. Fails when the selection is empty,
// selects every index, repeats an index, or names an index not present in q.
func SplitQubitAbsolute(ida, idb uint64, q *Qubit, selected []uint64) (*Qubit, *Qubit, error) {
	if q.consumed {
		return nil, nil, ErrQubitConsumed
	}
	if len(selected) == 0 {
		return nil, nil, ErrNoSplitIndices
	}
	if len(selected) == len(q.indices) {
		return nil, nil, ErrSplitRemainder
	}

	have := roaring64.New()
	have.AddMany(q.indices)

	picked := roaring64.New()
	for _, index := range selected {
		if !have.Contains(index) {
			return nil, nil, &ErrSplitIndexMissing{Index: index}
		}
		if picked.Contains(index) {
			return nil, nil, &ErrDuplicateSplitIndex{Index: index}
		}
		picked.Add(index)
	}

	remaining := make([]uint64, 0, len(q.indices)-len(selected))
	for _, index := range q.indices {
		if !picked.Contains(index) {
			remaining = append(remaining, index)
		}
	}

	q.consumed = true
	shared := sharedLineage{parent: q}

	return &Qubit{
			id:      ida,
			indices: slices.Clone(selected),
			lineage: shared,
		}, &Qubit{
			id:      idb,
			indices: remaining,
			lineage: shared,
		}, nil
}
