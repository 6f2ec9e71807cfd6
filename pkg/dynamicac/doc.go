// Package dynamicac implements a dynamic arc-consistency engine for
// finite-domain constraint satisfaction. It maintains a set of
// integer-valued variables, each with a finite domain of candidate values,
// together with a set of binary equality/inequality constraints between
// pairs of variables. Adding or retracting a constraint incrementally
// re-prunes variable domains so that only arc-consistent values remain.
//
// The engine is single-threaded and synchronous: every exported Engine
// method runs its propagation fixpoint to completion before returning, and
// callers must not invoke methods on the same Engine concurrently. It
// performs no I/O and has no configuration surface beyond the values passed
// to its constructors.
//
// The package does not perform search or backtracking; it only prunes to
// the arc-consistent closure of the current constraint set. It does not
// support n-ary constraints, arithmetic constraints, or constraint
// priorities.
package dynamicac
