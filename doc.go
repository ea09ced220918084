// Package qcircuit builds quantum computations as directed operation graphs
// over named groups of state-vector indices.
//
// A caller describes the computation through a builder; the result is a
// lineage graph of qubits plus the raw operator descriptors an execution
// engine needs to simulate the computation on a full complex state vector.
// The package tracks which absolute index positions belong to which logical
// qubit as qubits are split, merged and conditioned on one another, and
// guarantees every operator references a consistent, non-overlapping index
// set. Applying operators numerically and sampling measurement outcomes is
// the job of an external engine (see Engine).
//
// # Quick Start
//
//	b := qcircuit.NewOpBuilder()
//
//	q1, _ := b.Qubit(1)
//	q2, _ := b.Qubit(1)
//
//	q1, _ = qcircuit.Hadamard(b, q1)
//
//	cb := b.WithContext(q1)
//	q2, _ = qcircuit.Not(cb, q2) // controlled NOT
//	q1 = cb.ReleaseQubit()
//
//	q, _ := qcircuit.Merge(b, []*qcircuit.Qubit{q1, q2})
//	q, handle, _ := b.Measure(q)
//
// The finished graph hangs off the last qubit's lineage; hand it to an
// Engine implementation together with any initial-state requests built from
// qubit handles, then look the measurement outcome up by handle.
//
// # Ownership
//
// Qubits are consumed by every merge, split, measure or conditioning call
// and must not be reused afterwards; reuse is rejected with
// ErrQubitConsumed. Split siblings share their retired parent, which stays
// reachable for provenance exactly as long as either child.
//
// # Concurrency
//
// Builders are single-threaded and call-order-deterministic. Nothing in
// this package is safe for concurrent use; the finished graph, being
// immutable, may be consumed from any goroutine.
package qcircuit
