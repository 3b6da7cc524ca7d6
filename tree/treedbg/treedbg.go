/*
Package treedbg implements helpers to debug trees.

It renders a forest as an indented ASCII diagram:

    .
    ├── a
    │   ├── b
    │   └── c
    └── d

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treedbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/treetools/tree"
	tp "github.com/xlab/treeprint"
)

// Label returns the text to print for a node.
type Label[T any] func(node T) string

// Sprint renders a forest as a diagram. If label is nil, nodes are printed
// in their default format.
func Sprint[T any](roots []T, acc tree.Accessor[T], label Label[T]) string {
	if label == nil {
		label = func(node T) string { return fmt.Sprintf("%v", node) }
	}
	printer := tp.New()
	for _, root := range roots {
		addNode(printer, root, acc, label)
	}
	return printer.String()
}

// Fprint writes the diagram of a forest to w.
func Fprint[T any](w io.Writer, roots []T, acc tree.Accessor[T], label Label[T]) error {
	_, err := io.WriteString(w, Sprint(roots, acc, label))
	return err
}

// RecordLabel prints a record by one of its fields.
func RecordLabel(field string) Label[tree.Record] {
	return func(node tree.Record) string {
		if v, ok := node.Get(field); ok {
			return fmt.Sprintf("%v", v)
		}
		return "<?>"
	}
}

func addNode[T any](printer tp.Tree, node T, acc tree.Accessor[T], label Label[T]) {
	children, ok := acc.Children(node)
	if !ok || len(children) == 0 {
		printer.AddNode(label(node))
		return
	}
	branch := printer.AddBranch(label(node))
	for _, ch := range children {
		addNode(branch, ch, acc, label)
	}
}
