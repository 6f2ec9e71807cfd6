package dynamicac

// reviseArc re-evaluates every slot of variable a against the active values
// of variable b under the given constraint kind, crediting any new
// suppression to cid and clearing any suppression it previously credited to
// cid that no longer applies.
//
// It never touches a slot suppressed by a different constraint. That is
// what makes multiple independent constraints killing the same value work:
// only the first constraint to kill a value is credited, and every other
// constraint's revise leaves it alone.
func reviseArc(domains []domain, a, b int, kind ConstraintKind, cid int, mon *monitor) (changed, wiped bool) {
	activeB := domains[b].active()

	da := &domains[a]
	for i := range da.slots {
		slot := &da.slots[i]
		supported := hasSupport(slot.value, activeB, kind)

		switch slot.suppressor {
		case noSuppressor:
			if !supported {
				slot.suppressor = cid
				changed = true
				mon.recordSuppressed(1)
			}
		case cid:
			if supported {
				slot.suppressor = noSuppressor
				changed = true
				mon.recordUnsuppressed(1)
			}
		default:
			// suppressed by another constraint; leave it alone
		}
	}

	return changed, da.isWiped()
}

// hasSupport implements the two constraint semantics:
//
//   - equality: support iff value is active in b
//   - inequality: support iff b's active set is not the singleton {value}
//     (equivalently, some active value in b differs from value)
func hasSupport(value int, activeB []int, kind ConstraintKind) bool {
	switch kind {
	case Equality:
		for _, v := range activeB {
			if v == value {
				return true
			}
		}
		return false
	case Inequality:
		for _, v := range activeB {
			if v != value {
				return true
			}
		}
		return false
	default:
		panic("dynamicac: unknown constraint kind")
	}
}

// applySelfInequality handles the degenerate a == b inequality constraint:
// no variable can differ from itself, so every live value is immediately
// forbidden, regardless of domain size. The generic arc-revise rule above
// cannot express this (it would see some other live value in the same
// domain differ and wrongly conclude support exists), so the degenerate
// case is special-cased by Engine before it ever reaches propagate.
func applySelfInequality(d *domain, cid int, mon *monitor) (changed bool) {
	for i := range d.slots {
		if d.slots[i].suppressor == noSuppressor {
			d.slots[i].suppressor = cid
			changed = true
			mon.recordSuppressed(1)
		}
	}
	return changed
}
