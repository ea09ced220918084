// Package ops defines the closed set of operator descriptors a circuit
// builder emits: dense matrices, sparse matrices, swaps, deterministic
// permutation functions and control-gated wrappers around any of them.
//
// A descriptor is immutable once built and carries the absolute state-vector
// index positions it acts on. Constructors validate the per-variant
// invariants (coefficient counts, column ranges, equal swap sizes,
// control/target disjointness) and return named errors on violation; the
// execution engine can rely on every constructed descriptor being
// well-formed.
package ops
