// Package bitutil provides allocation-free bit arithmetic for mapping
// logical qubit-group operations onto positions in a flat state vector.
//
// All functions are pure and total: there are no error cases and no
// allocations. They form the numeric substrate the execution engine and
// the index-mapping logic in the root package build on.
package bitutil
