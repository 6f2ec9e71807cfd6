package dynamicac

// State is the Engine's two-state machine: an Engine is either Consistent,
// or Failed on the constraint whose addition produced a domain wipeout.
// Retract is the only legal exit from Failed.
type State int

const (
	// Consistent means every variable's active domain is arc-consistent with
	// respect to every registered constraint.
	Consistent State = iota
	// Failed means the last AddEquality/AddInequality call wiped out a
	// variable's domain. The triggering constraint remains registered; no
	// further AddEquality/AddInequality calls are accepted until a Retract
	// call restores Consistent.
	Failed
)

func (s State) String() string {
	if s == Failed {
		return "failed"
	}
	return "consistent"
}

// View is a read-only snapshot of one variable's active domain, handed to
// Listener callbacks so they can inspect state without being able to mutate
// it. The backing slice is owned by the View, not the Engine.
type View struct {
	values []int
}

// Values returns the variable's active domain, in insertion order.
func (v View) Values() []int {
	return v.values
}

// Listener is called by Engine whenever propagation changes a variable's
// active domain. variable is the changed variable's id; view exposes its
// new active domain. Listener must not call back into the Engine that
// invoked it: the facade is not reentrant.
type Listener func(variable int, view View)

// Engine is the sole exported entry point for building and mutating a
// dynamic arc-consistency problem. It is not safe for concurrent use: every
// exported method must complete before another is invoked, matching the
// single-mutator assumption the propagation loop relies on.
type Engine struct {
	domains   []domain
	reg       *registry
	mon       monitor
	listeners map[int][]Listener

	state             State
	failedConstraint  int
	failedVariable    int
	failedExplanation []int
}

// NewEngine returns an empty engine: no variables, no constraints,
// Consistent.
func NewEngine() *Engine {
	return &Engine{
		reg:       newRegistry(),
		listeners: make(map[int][]Listener),
		state:     Consistent,
	}
}

// AddVariable registers a new variable with the given candidate values and
// returns its id. Ids are assigned sequentially starting at 0 and are stable
// for the lifetime of the engine. Duplicate values in values are not
// deduplicated: each becomes its own independently suppressible slot.
//
// AddVariable is accepted in any state, including Failed: adding an
// unconstrained variable cannot affect the arc-consistency of the existing
// ones.
func (e *Engine) AddVariable(values []int) int {
	id := len(e.domains)
	e.domains = append(e.domains, newDomain(values))
	return id
}

// QueryDomain returns the variable's current active domain, in insertion
// order. It panics if id does not name a registered variable.
func (e *Engine) QueryDomain(id int) []int {
	e.checkVariable(id)
	return e.domains[id].active()
}

// Stats returns a point-in-time snapshot of the engine's propagation
// activity. It never affects engine behavior.
func (e *Engine) Stats() Stats {
	return e.mon.snapshot()
}

// State reports whether the engine is Consistent or Failed.
func (e *Engine) State() State {
	return e.state
}

// OnDomainChange registers a listener invoked after every propagation run
// that changes variable's active domain. Listeners are called
// synchronously, in registration order, before AddEquality, AddInequality,
// or Retract returns.
func (e *Engine) OnDomainChange(variable int, l Listener) {
	e.checkVariable(variable)
	e.listeners[variable] = append(e.listeners[variable], l)
}

// AddEquality registers a new equality constraint between a and b and
// propagates its consequences. It returns the new constraint's id on
// success.
//
// If propagation wipes out a variable's active domain, AddEquality returns a
// *WipeoutError describing the conflict and the engine transitions to
// Failed; the constraint remains registered.
//
// AddEquality panics if the engine is already Failed, since no further
// AddEquality/AddInequality calls are accepted until the caller retracts,
// or if a or b does not name a registered variable.
func (e *Engine) AddEquality(a, b int) (int, error) {
	return e.addConstraint(a, b, Equality)
}

// AddInequality registers a new inequality constraint between a and b and
// propagates its consequences. See AddEquality for the shared contract.
//
// The degenerate case a == b is handled specially: no value can differ from
// itself, so the constraint immediately suppresses every live value in the
// variable's domain.
func (e *Engine) AddInequality(a, b int) (int, error) {
	return e.addConstraint(a, b, Inequality)
}

func (e *Engine) addConstraint(a, b int, kind ConstraintKind) (int, error) {
	if e.state == Failed {
		panic("dynamicac: AddEquality/AddInequality called while engine is in the Failed state")
	}
	e.checkVariable(a)
	e.checkVariable(b)

	cid := e.reg.insert(a, b, kind)
	e.mon.recordConstraintAdded()

	touched := make(map[int]struct{})

	if a == b && kind == Inequality {
		if applySelfInequality(&e.domains[a], cid, &e.mon) {
			touched[a] = struct{}{}
		}
		if e.domains[a].isWiped() {
			e.mon.recordWipeout()
			return e.fail(a, cid, touched)
		}
		e.notify(touched)
		return cid, nil
	}

	result := propagate(e.domains, e.reg, []int{cid}, &e.mon, touched)
	if !result.ok {
		return e.fail(result.wipedAt, cid, touched)
	}

	e.notify(touched)
	return cid, nil
}

// fail records a wipeout discovered while adding cid: it captures the
// conflict explanation, transitions the engine to Failed, and still notifies
// listeners for every variable that changed before the wipeout was detected.
func (e *Engine) fail(wipedVar, cid int, touched map[int]struct{}) (int, error) {
	explanation := e.domains[wipedVar].suppressorsOf()
	e.state = Failed
	e.failedConstraint = cid
	e.failedVariable = wipedVar
	e.failedExplanation = explanation
	e.notify(touched)
	return cid, &WipeoutError{
		Variable:    wipedVar,
		Constraint:  cid,
		Explanation: explanation,
	}
}

// Retract removes the constraint identified by cid and re-propagates from
// the incidence of the two variables it touched. Retracting an unknown or
// already-retracted cid is a silent no-op.
//
// If the engine was Failed on cid, retracting it is how the caller recovers,
// though resolving one wipeout can surface a second, independent one if
// multiple constraints conflicted. Retraction from a previously Consistent
// state must never itself wipe out a domain: resurrecting values can only
// enlarge active domains. If that invariant is ever violated, Retract
// panics with ErrRetractWipeout rather than silently returning an
// inconsistent engine.
func (e *Engine) Retract(cid int) {
	rec, ok := e.reg.remove(cid)
	if !ok {
		return
	}
	e.mon.recordConstraintRetracted()

	wasConsistent := e.state == Consistent

	touched := make(map[int]struct{})
	revivedA := e.domains[rec.a].clearSuppressor(cid)
	revivedB := e.domains[rec.b].clearSuppressor(cid)
	e.mon.recordUnsuppressed(revivedA + revivedB)
	if revivedA > 0 {
		touched[rec.a] = struct{}{}
	}
	if revivedB > 0 {
		touched[rec.b] = struct{}{}
	}

	seed := e.reg.incident(rec.a)
	seed = append(seed, e.reg.incident(rec.b)...)

	result := propagate(e.domains, e.reg, seed, &e.mon, touched)

	if !result.ok {
		if wasConsistent {
			panic(ErrRetractWipeout)
		}
		e.state = Failed
		e.failedConstraint = cid
		e.failedVariable = result.wipedAt
		e.failedExplanation = e.domains[result.wipedAt].suppressorsOf()
		e.notify(touched)
		return
	}

	// The reseed above only propagated from the incidence of the two
	// variables this constraint touched, so a prior wipeout elsewhere is
	// only actually resolved if the previously wiped variable came back to
	// life; otherwise the engine is still Failed on the same offender, just
	// with a possibly narrower explanation after this retraction.
	if !wasConsistent {
		if e.domains[e.failedVariable].isWiped() {
			e.failedExplanation = e.domains[e.failedVariable].suppressorsOf()
			e.notify(touched)
			return
		}
	}

	e.state = Consistent
	e.failedConstraint = 0
	e.failedVariable = 0
	e.failedExplanation = nil
	e.notify(touched)
}

// notify invokes every registered listener for every touched variable, in
// registration order.
func (e *Engine) notify(touched map[int]struct{}) {
	if len(e.listeners) == 0 || len(touched) == 0 {
		return
	}
	for v := range touched {
		ls := e.listeners[v]
		if len(ls) == 0 {
			continue
		}
		view := View{values: e.domains[v].active()}
		for _, l := range ls {
			l(v, view)
		}
	}
}

func (e *Engine) checkVariable(id int) {
	if id < 0 || id >= len(e.domains) {
		unknownVariable(id)
	}
}
