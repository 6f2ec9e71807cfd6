package dynamicac

import "sync/atomic"

// Stats is a point-in-time snapshot of an Engine's propagation activity:
// lock-free atomic counters read out through a value copy, used purely for
// observability and never consulted by the engine itself for control flow.
type Stats struct {
	ConstraintsAdded     int64
	ConstraintsRetracted int64
	PropagationRuns      int64
	SlotsSuppressed      int64
	SlotsUnsuppressed    int64
	Wipeouts             int64
}

// monitor holds the atomic counters backing Stats. A zero-value monitor is
// ready to use.
type monitor struct {
	constraintsAdded     atomic.Int64
	constraintsRetracted atomic.Int64
	propagationRuns      atomic.Int64
	slotsSuppressed      atomic.Int64
	slotsUnsuppressed    atomic.Int64
	wipeouts             atomic.Int64
}

func (m *monitor) recordConstraintAdded()     { m.constraintsAdded.Add(1) }
func (m *monitor) recordConstraintRetracted() { m.constraintsRetracted.Add(1) }
func (m *monitor) recordPropagationRun()      { m.propagationRuns.Add(1) }
func (m *monitor) recordSuppressed(n int)     { m.slotsSuppressed.Add(int64(n)) }
func (m *monitor) recordUnsuppressed(n int)   { m.slotsUnsuppressed.Add(int64(n)) }
func (m *monitor) recordWipeout()             { m.wipeouts.Add(1) }

func (m *monitor) snapshot() Stats {
	return Stats{
		ConstraintsAdded:     m.constraintsAdded.Load(),
		ConstraintsRetracted: m.constraintsRetracted.Load(),
		PropagationRuns:      m.propagationRuns.Load(),
		SlotsSuppressed:      m.slotsSuppressed.Load(),
		SlotsUnsuppressed:    m.slotsUnsuppressed.Load(),
		Wipeouts:             m.wipeouts.Load(),
	}
}
