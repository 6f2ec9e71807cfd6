package dynamicac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These scenarios mirror the canonical test suite for this engine: each
// exercises one property of the propagation/retraction/wipeout model end to
// end through the public Engine API.

func TestScenarioBasicEquality(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1, 2, 3})
	b := e.AddVariable([]int{2, 3, 4})

	_, err := e.AddEquality(a, b)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, e.QueryDomain(a))
	assert.Equal(t, []int{2, 3}, e.QueryDomain(b))
}

func TestScenarioTransitiveWipeout(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1, 2})
	b := e.AddVariable([]int{2, 3})
	c := e.AddVariable([]int{3, 4})

	_, err := e.AddEquality(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, e.QueryDomain(a))
	assert.Equal(t, []int{2}, e.QueryDomain(b))

	cid, err := e.AddEquality(b, c)
	require.Error(t, err)

	var wipeout *WipeoutError
	require.ErrorAs(t, err, &wipeout)
	assert.Contains(t, wipeout.Explanation, cid)

	// At least one of the three variables must now be empty; the scoped
	// propagation halts at the first wipeout rather than rescanning every
	// variable, so this is not necessarily all three.
	empty := len(e.QueryDomain(a)) == 0 || len(e.QueryDomain(b)) == 0 || len(e.QueryDomain(c)) == 0
	assert.True(t, empty)
}

func TestScenarioSingletonInequalityPruning(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1})
	b := e.AddVariable([]int{1, 2, 3})

	_, err := e.AddInequality(a, b)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, e.QueryDomain(b))
}

func TestScenarioBasicRetraction(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1, 2})
	b := e.AddVariable([]int{3, 4})

	cid, err := e.AddEquality(a, b)
	require.Error(t, err)
	assert.Empty(t, e.QueryDomain(a))

	e.Retract(cid)
	assert.Equal(t, []int{1, 2}, e.QueryDomain(a))
	assert.Equal(t, []int{3, 4}, e.QueryDomain(b))
	assert.Equal(t, Consistent, e.State())
}

func TestScenarioMultipleSuppressionLogic(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1, 2, 3})
	b := e.AddVariable([]int{1})
	c := e.AddVariable([]int{1})

	id0, err := e.AddInequality(a, b)
	require.NoError(t, err)
	id1, err := e.AddInequality(a, c)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, e.QueryDomain(a))

	e.Retract(id0)
	// value 1 in a is still forbidden by id1 (a != c): retracting id0 revives
	// it, and the re-propagation suppresses it again under id1.
	assert.Equal(t, []int{2, 3}, e.QueryDomain(a))

	e.Retract(id1)
	assert.Equal(t, []int{1, 2, 3}, e.QueryDomain(a))
}

func TestScenarioDiamondChainPropagation(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1, 2, 3})
	b := e.AddVariable([]int{2, 3, 4})
	c := e.AddVariable([]int{2, 3, 4})
	d := e.AddVariable([]int{3, 4, 5})

	_, err := e.AddEquality(a, b)
	require.NoError(t, err)
	_, err = e.AddEquality(b, d)
	require.NoError(t, err)
	_, err = e.AddEquality(a, c)
	require.NoError(t, err)
	_, err = e.AddEquality(c, d)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, e.QueryDomain(a))
	assert.Equal(t, []int{3}, e.QueryDomain(d))
}

func TestScenarioInequalityChainReaction(t *testing.T) {
	e := NewEngine()
	a := e.AddVariable([]int{1})
	b := e.AddVariable([]int{1, 2})
	c := e.AddVariable([]int{2, 3})

	_, err := e.AddInequality(a, b)
	require.NoError(t, err)
	_, err = e.AddInequality(b, c)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, e.QueryDomain(b))
	assert.Equal(t, []int{3}, e.QueryDomain(c))
}

// TestRetractSeedIndependence grounds P5 (order independence): adding the
// same two constraints in either order and then retracting one leaves the
// same final active domains.
func TestRetractSeedIndependence(t *testing.T) {
	build := func(firstAB bool) []int {
		e := NewEngine()
		a := e.AddVariable([]int{1, 2, 3})
		b := e.AddVariable([]int{1})
		c := e.AddVariable([]int{1})

		var ab int
		if firstAB {
			ab, _ = e.AddInequality(a, b)
			e.AddInequality(a, c)
		} else {
			e.AddInequality(a, c)
			ab, _ = e.AddInequality(a, b)
		}
		e.Retract(ab)
		return e.QueryDomain(a)
	}

	assert.Equal(t, build(true), build(false))
}
