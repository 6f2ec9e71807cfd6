// Package main demonstrates basic dynamic-ac usage patterns.
package main

import (
	"errors"
	"fmt"

	"github.com/ratioSolver/dynamic-ac/pkg/dynamicac"
)

func main() {
	fmt.Println("=== dynamic-ac Examples ===")
	fmt.Println()

	basicEquality()
	transitiveWipeout()
	retraction()
}

// basicEquality demonstrates pruning a pair of variables to their
// intersection.
func basicEquality() {
	fmt.Println("1. Basic Equality:")

	e := dynamicac.NewEngine()
	a := e.AddVariable([]int{1, 2, 3})
	b := e.AddVariable([]int{2, 3, 4})

	if _, err := e.AddEquality(a, b); err != nil {
		fmt.Printf("   unexpected error: %v\n", err)
		return
	}

	fmt.Print(e.Dump())
	fmt.Println()
}

// transitiveWipeout demonstrates a conflicting chain of equalities
// producing a domain wipeout with a conflict explanation.
func transitiveWipeout() {
	fmt.Println("2. Transitive Wipeout:")

	e := dynamicac.NewEngine()
	a := e.AddVariable([]int{1, 2})
	b := e.AddVariable([]int{2, 3})
	c := e.AddVariable([]int{3, 4})

	if _, err := e.AddEquality(a, b); err != nil {
		fmt.Printf("   unexpected error: %v\n", err)
		return
	}

	cid, err := e.AddEquality(b, c)

	var wipeout *dynamicac.WipeoutError
	if errors.As(err, &wipeout) {
		fmt.Printf("   add_equality(b, c) = %d failed: %v\n", cid, wipeout)
		fmt.Printf("   engine state: %v\n", e.State())
	}

	fmt.Print(e.Dump())
	fmt.Println()
}

// retraction demonstrates recovering from a wipeout by retracting the
// offending constraint.
func retraction() {
	fmt.Println("3. Retraction:")

	e := dynamicac.NewEngine()
	a := e.AddVariable([]int{1, 2})
	b := e.AddVariable([]int{3, 4})

	cid, err := e.AddEquality(a, b)
	var wipeout *dynamicac.WipeoutError
	if errors.As(err, &wipeout) {
		fmt.Printf("   add_equality(a, b) failed, explanation: %v\n", wipeout.Explanation)
	}

	e.Retract(cid)
	fmt.Printf("   after retract(%d), engine state: %v\n", cid, e.State())
	fmt.Print(e.Dump())

	stats := e.Stats()
	fmt.Printf("   stats: %+v\n", stats)
}
