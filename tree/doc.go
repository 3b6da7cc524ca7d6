/*
Package tree implements queries and reshaping operations on generic trees.

There are many tree implementations around. This package does not insist
on one of them. Clients bring their own node type, and tell the package how
to reach the children of a node by handing over an Accessor. Every
operation works on a forest, i.e. a slice of root nodes; a single tree is
simply a forest of one.

Operations

   BreadthFirst(roots, acc, visit)        // level order, visit returns false to stop
   DepthFirst(roots, acc, visit, opts…)   // pre-order (default) or PostOrder()
   Find(roots, acc, predicate, opts…)     // first match or FindAll()
   FindPath(roots, acc, predicate)        // root-to-node path of first match
   Filter(roots, rb, predicate, opts…)    // pruned copy of the tree
   Flatten(roots, acc, opts…)             // pre-order list of all nodes
   BuildFromList(list, linker, opts…)     // reconstruct a forest from id/parentId links

Nodes

Three kinds of nodes are supported out of the box:

- Record, a property bag as produced by decoding JSON or YAML. The names of the
properties holding id, parent id and children are configurable with FieldNames.

- Node[T], a typed node carrying a payload.

- Any other type, by wrapping functions with ChildrenFunc, Shape or Links.

None of the operations, except BuildFromList, modifies its input.
Filter returns shallow copies of the nodes it keeps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treetools.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treetools.tree")
}
