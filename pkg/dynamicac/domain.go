package dynamicac

import "sort"

// noSuppressor marks a value slot as live. Constraint ids are a monotone
// counter starting at 0, so -1 is never a valid suppressor and is safe to
// use as the absent marker (mirrors the Rust original's Option<usize>).
const noSuppressor = -1

// valueSlot is a single candidate value for a variable together with the
// constraint id, if any, that currently suppresses it. A slot is live iff
// suppressor == noSuppressor. Slots are never deleted once created; only
// their suppressor changes.
type valueSlot struct {
	value      int
	suppressor int
}

// domain holds one variable's candidate values: the ordered sequence of
// value slots in insertion order. The original value order is preserved for
// the lifetime of the variable.
type domain struct {
	slots []valueSlot
}

// newDomain builds a fresh domain from the given values, in order. Duplicate
// values are not deduplicated: each becomes its own independently
// suppressible slot.
func newDomain(values []int) domain {
	slots := make([]valueSlot, len(values))
	for i, v := range values {
		slots[i] = valueSlot{value: v, suppressor: noSuppressor}
	}
	return domain{slots: slots}
}

// active returns the values of live slots in insertion order. Purely
// observational; it does not mutate the domain.
func (d *domain) active() []int {
	out := make([]int, 0, len(d.slots))
	for _, s := range d.slots {
		if s.suppressor == noSuppressor {
			out = append(out, s.value)
		}
	}
	return out
}

// isLive reports whether the slot at index i is currently live.
func (d *domain) isLive(i int) bool {
	return d.slots[i].suppressor == noSuppressor
}

// isWiped reports whether no slot in the domain is live.
func (d *domain) isWiped() bool {
	for _, s := range d.slots {
		if s.suppressor == noSuppressor {
			return false
		}
	}
	return true
}

// suppress sets the slot's suppressor to cid. Idempotent when already equal
// to cid.
func (d *domain) suppress(i, cid int) {
	d.slots[i].suppressor = cid
}

// unsuppress clears the slot's suppressor, reviving the value.
func (d *domain) unsuppress(i int) {
	d.slots[i].suppressor = noSuppressor
}

// suppressorsOf collects the distinct, non-absent suppressor ids present on
// the domain's slots, in ascending order. This is the conflict explanation
// primitive used by AddEquality/AddInequality on wipeout.
func (d *domain) suppressorsOf() []int {
	seen := make(map[int]struct{})
	for _, s := range d.slots {
		if s.suppressor != noSuppressor {
			seen[s.suppressor] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for cid := range seen {
		out = append(out, cid)
	}
	sort.Ints(out)
	return out
}

// clearSuppressor clears every slot suppressed by cid and returns how many
// slots it revived. Used by retract to resurrect the values a single
// constraint killed; no other variable's slots can carry this suppressor, so
// the caller only needs to call this for the two variables the constraint
// touched.
func (d *domain) clearSuppressor(cid int) (revived int) {
	for i := range d.slots {
		if d.slots[i].suppressor == cid {
			d.slots[i].suppressor = noSuppressor
			revived++
		}
	}
	return revived
}
