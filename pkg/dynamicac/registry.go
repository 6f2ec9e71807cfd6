package dynamicac

import "sort"

// ConstraintKind distinguishes the two binary constraint shapes the engine
// supports. There is no third kind and none is planned: arithmetic and
// n-ary constraints are out of scope.
type ConstraintKind int

const (
	// Equality requires the two variables to share a live value.
	Equality ConstraintKind = iota
	// Inequality requires the two variables to not be forced to the same
	// singleton value.
	Inequality
)

func (k ConstraintKind) String() string {
	if k == Inequality {
		return "!="
	}
	return "=="
}

// constraintRecord is the triple (variable_a, variable_b, kind) the
// registry stores per constraint id.
type constraintRecord struct {
	a, b int
	kind ConstraintKind
}

// registry is an opaque-id-to-triple mapping plus an incidence index
// maintained on insert/remove so that incident(v) is O(|incident
// constraints|) rather than a full scan.
type registry struct {
	constraints map[int]constraintRecord
	incidence   map[int]map[int]struct{} // variable id -> set of incident cids
	nextID      int
}

func newRegistry() *registry {
	return &registry{
		constraints: make(map[int]constraintRecord),
		incidence:   make(map[int]map[int]struct{}),
	}
}

// insert allocates a fresh, never-reused cid and stores the triple.
// Identifiers are never reused, even after retraction.
func (r *registry) insert(a, b int, kind ConstraintKind) int {
	cid := r.nextID
	r.nextID++
	r.constraints[cid] = constraintRecord{a: a, b: b, kind: kind}
	r.addIncidence(cid, a, b)
	return cid
}

// remove deletes cid from the registry and returns the triple it held, or
// reports absence. Removing an unknown cid is not an error at this layer;
// Engine turns that into retract's silent no-op.
func (r *registry) remove(cid int) (constraintRecord, bool) {
	rec, ok := r.constraints[cid]
	if !ok {
		return constraintRecord{}, false
	}
	delete(r.constraints, cid)
	r.removeIncidence(cid, rec.a, rec.b)
	return rec, true
}

// lookup returns the triple stored for cid, if still registered.
func (r *registry) lookup(cid int) (constraintRecord, bool) {
	rec, ok := r.constraints[cid]
	return rec, ok
}

// incident returns, in ascending order, every constraint id mentioning
// variable v. Ascending order isn't load-bearing for correctness but makes
// propagation order (and therefore test expectations) stable.
func (r *registry) incident(v int) []int {
	set := r.incidence[v]
	out := make([]int, 0, len(set))
	for cid := range set {
		out = append(out, cid)
	}
	sort.Ints(out)
	return out
}

func (r *registry) addIncidence(cid, a, b int) {
	r.ensureIncidenceSet(a)[cid] = struct{}{}
	r.ensureIncidenceSet(b)[cid] = struct{}{}
}

func (r *registry) removeIncidence(cid, a, b int) {
	delete(r.incidence[a], cid)
	delete(r.incidence[b], cid)
}

func (r *registry) ensureIncidenceSet(v int) map[int]struct{} {
	set, ok := r.incidence[v]
	if !ok {
		set = make(map[int]struct{})
		r.incidence[v] = set
	}
	return set
}
