package treetools_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/treetools"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return strconv.FormatFloat(float64(x), 'f', 3, 32)
	}
	h := treetools.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	yes := treetools.Const[int](true)
	if !yes(7) {
		t.Error("expected const predicate to be true")
	}
}

func TestCombinators(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 10 }
	if !treetools.And(even, big)(12) || treetools.And(even, big)(8) {
		t.Error("And does not work as expected")
	}
	if !treetools.Or(even, big)(8) || treetools.Or(even, big)(7) {
		t.Error("Or does not work as expected")
	}
	if treetools.Not(even)(8) {
		t.Error("Not does not work as expected")
	}
	if !treetools.And[int]()(1) || treetools.Or[int]()(1) {
		t.Error("empty And/Or should match all/nothing")
	}
}

func TestOn(t *testing.T) {
	type node struct{ payload int }
	p := treetools.On(func(n node) int { return n.payload }, func(x int) bool { return x == 3 })
	if !p(node{3}) || p(node{4}) {
		t.Error("On does not lift predicate as expected")
	}
}
