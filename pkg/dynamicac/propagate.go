package dynamicac

// propagateResult reports the outcome of a propagation run: either success,
// or a domain wipeout naming the offending variable.
type propagateResult struct {
	ok      bool
	wipedAt int // valid only when !ok
}

// propagate is the AC-3-style worklist loop. It seeds a FIFO worklist with
// seed, repeatedly revises both arcs of the popped constraint, and on any
// change enqueues every other constraint incident on a changed variable.
// The loop terminates either when the worklist drains (Ok) or when a revise
// wipes out a variable (Wipeout).
//
// touched, if non-nil, accumulates every variable whose domain actually
// changed during the run, for the caller's listener hook.
func propagate(domains []domain, reg *registry, seed []int, mon *monitor, touched map[int]struct{}) propagateResult {
	mon.recordPropagationRun()

	queue := make([]int, 0, len(seed))
	queued := make(map[int]struct{}, len(seed))
	for _, cid := range seed {
		if _, ok := reg.lookup(cid); !ok {
			continue
		}
		if _, dup := queued[cid]; dup {
			continue
		}
		queue = append(queue, cid)
		queued[cid] = struct{}{}
	}

	for len(queue) > 0 {
		cid := queue[0]
		queue = queue[1:]
		delete(queued, cid)

		rec, ok := reg.lookup(cid)
		if !ok {
			// Removed mid-iteration: does not occur through the current
			// public API, but a future caller must not be able to crash
			// propagate by doing so.
			continue
		}

		changedA, wipedA := reviseArc(domains, rec.a, rec.b, rec.kind, cid, mon)
		if changedA && touched != nil {
			touched[rec.a] = struct{}{}
		}
		if wipedA {
			mon.recordWipeout()
			return propagateResult{ok: false, wipedAt: rec.a}
		}
		changedB, wipedB := reviseArc(domains, rec.b, rec.a, rec.kind, cid, mon)
		if changedB && touched != nil {
			touched[rec.b] = struct{}{}
		}
		if wipedB {
			mon.recordWipeout()
			return propagateResult{ok: false, wipedAt: rec.b}
		}

		if changedA || changedB {
			enqueueIncident(reg, rec.a, cid, &queue, queued)
			enqueueIncident(reg, rec.b, cid, &queue, queued)
		}
	}

	return propagateResult{ok: true}
}

// enqueueIncident appends every constraint incident on v, other than skip,
// to queue, unless it is already queued.
func enqueueIncident(reg *registry, v, skip int, queue *[]int, queued map[int]struct{}) {
	for _, cid := range reg.incident(v) {
		if cid == skip {
			continue
		}
		if _, dup := queued[cid]; dup {
			continue
		}
		*queue = append(*queue, cid)
		queued[cid] = struct{}{}
	}
}
