/*
Package treetools is the root of a small toolkit for querying and reshaping
generic trees. The tree operations live in package tree; this package holds
generic helpers to build the predicates they are driven by.

    isLeaf := func(n tree.Record) bool { … }
    hasName := func(n tree.Record) bool { … }
    nodes, err := tree.Find(roots, tree.Fields(), treetools.And(isLeaf, treetools.Not(hasName)))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treetools

// Predicate is a function type to match against nodes of a tree.
type Predicate[T any] func(node T) bool

// Const returns a predicate which always yields b.
func Const[T any](b bool) Predicate[T] {
	return func(T) bool {
		return b
	}
}

// Not negates a predicate.
func Not[T any](p func(T) bool) Predicate[T] {
	return func(node T) bool {
		return !p(node)
	}
}

// And matches if all of ps match. And() matches everything.
// Evaluation stops at the first predicate failing.
func And[T any](ps ...func(T) bool) Predicate[T] {
	return func(node T) bool {
		for _, p := range ps {
			if !p(node) {
				return false
			}
		}
		return true
	}
}

// Or matches if any of ps matches. Or() matches nothing.
// Evaluation stops at the first predicate matching.
func Or[T any](ps ...func(T) bool) Predicate[T] {
	return func(node T) bool {
		for _, p := range ps {
			if p(node) {
				return true
			}
		}
		return false
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// On lifts a predicate on values of type B to nodes of type A, using an
// extractor: On(payload, isEven) matches nodes with an even payload.
func On[A, B any](extract func(A) B, p func(B) bool) Predicate[A] {
	return Predicate[A](Compose(extract, p))
}
