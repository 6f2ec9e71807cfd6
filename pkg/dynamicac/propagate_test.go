package dynamicac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildChain(t *testing.T) ([]domain, *registry, []int) {
	t.Helper()
	domains := []domain{
		newDomain([]int{1, 2, 3}),
		newDomain([]int{2, 3, 4}),
		newDomain([]int{2, 3, 4, 5}),
	}
	reg := newRegistry()
	c0 := reg.insert(0, 1, Equality)
	c1 := reg.insert(1, 2, Equality)
	return domains, reg, []int{c0, c1}
}

func TestPropagateChainsThroughIncidentConstraints(t *testing.T) {
	domains, reg, seed := buildChain(t)

	result := propagate(domains, reg, seed[:1], &monitor{}, nil)
	assert.True(t, result.ok)

	// Seeding only c0 must still chain into c1 because narrowing var 1
	// re-enqueues every other constraint incident on it.
	assert.Equal(t, []int{2, 3}, domains[0].active())
	assert.Equal(t, []int{2, 3}, domains[1].active())
	assert.Equal(t, []int{2, 3}, domains[2].active())
}

func TestPropagateReportsWipeout(t *testing.T) {
	domains := []domain{
		newDomain([]int{1, 2}),
		newDomain([]int{5, 6}),
	}
	reg := newRegistry()
	cid := reg.insert(0, 1, Equality)

	result := propagate(domains, reg, []int{cid}, &monitor{}, nil)
	assert.False(t, result.ok)
	assert.Equal(t, 0, result.wipedAt)
}

func TestPropagateIgnoresUnknownSeedIDs(t *testing.T) {
	domains := []domain{newDomain([]int{1}), newDomain([]int{1})}
	reg := newRegistry()
	result := propagate(domains, reg, []int{999}, &monitor{}, nil)
	assert.True(t, result.ok)
}

func TestPropagatePopulatesTouched(t *testing.T) {
	domains, reg, seed := buildChain(t)
	touched := make(map[int]struct{})

	propagate(domains, reg, seed[:1], &monitor{}, touched)

	_, v0 := touched[0]
	_, v1 := touched[1]
	_, v2 := touched[2]
	assert.True(t, v0)
	assert.True(t, v1)
	assert.True(t, v2)
}
