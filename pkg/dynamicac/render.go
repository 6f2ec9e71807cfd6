package dynamicac

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dump renders the engine's current state as one "e<i>: {v1, v2, ...}" line
// per variable listing its active domain in insertion order, followed by
// one "e<a> == e<b>" or "e<a> != e<b>" line per registered constraint.
// Constraint lines are ordered by ascending constraint id for
// reproducibility.
//
// Dump is purely observational: it never mutates the engine and is safe to
// call in any state, including Failed.
func (e *Engine) Dump() string {
	var b strings.Builder

	for i := range e.domains {
		values := e.domains[i].active()
		strs := make([]string, len(values))
		for j, v := range values {
			strs[j] = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, "e%d: {%s}\n", i, strings.Join(strs, ", "))
	}

	ids := make([]int, 0, len(e.reg.constraints))
	for cid := range e.reg.constraints {
		ids = append(ids, cid)
	}
	sort.Ints(ids)

	for _, cid := range ids {
		rec := e.reg.constraints[cid]
		fmt.Fprintf(&b, "e%d %s e%d\n", rec.a, rec.kind, rec.b)
	}

	return b.String()
}
