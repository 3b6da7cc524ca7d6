package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
Node is a typed tree node for clients which do not have a node type of their
own. Each node carries a payload of type parameter T and maintains an ordered
slice of children plus a back link to its parent.

Nodes are not safe for concurrent modification. None of the operations of this
package modifies a tree concurrently.
*/

// Node is the base type a typed tree is built of.
type Node[T any] struct {
	Payload  T          // nodes may carry a payload of arbitrary type
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children, nil if never set
}

// NewNode creates a new tree node with a given payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. The child is connected to this node as its
// parent. It returns the parent node to allow for chaining:
//
//     root := tree.NewNode("a").AddChild(tree.NewNode("b")).AddChild(tree.NewNode("c"))
//
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children
// at later positions. If i is beyond the current number of children, the
// child is appended.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		return node.AddChild(ch)
	}
	node.children = append(node.children, nil) // make room for one child
	copy(node.children[i+1:], node.children[i:]) // shift i+1..n
	node.children[i] = ch
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil || node.children == nil {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// --- Accessors for Node ----------------------------------------------------

type nodeShape[T any] struct{}

// NodeShape returns a Rebuilder for trees of *Node[T].
// Clones share the payload and the parent link of the original; children
// set on a clone are re-parented to the clone.
func NodeShape[T any]() Rebuilder[*Node[T]] {
	return nodeShape[T]{}
}

func (nodeShape[T]) Children(node *Node[T]) ([]*Node[T], bool) {
	if node == nil || node.children == nil {
		return nil, false
	}
	return node.children, true
}

func (nodeShape[T]) Clone(node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	return &Node[T]{
		Payload:  node.Payload,
		parent:   node.parent,
		children: node.children,
	}
}

func (nodeShape[T]) SetChildren(node *Node[T], children []*Node[T]) *Node[T] {
	if node == nil {
		return nil
	}
	node.children = make([]*Node[T], 0, len(children))
	for _, ch := range children {
		node.AddChild(ch)
	}
	return node
}

// NodeLinks returns a Linker for lists of *Node[T]. id and parentID extract
// the keys from the payload of a node.
func NodeLinks[T any, K comparable](id, parentID func(payload T) (K, bool)) Links[*Node[T], K] {
	return Links[*Node[T], K]{
		PrepareFn: func(node *Node[T]) *Node[T] {
			node.children = []*Node[T]{}
			node.parent = nil
			return node
		},
		IDOf: func(node *Node[T]) (K, bool) {
			return id(node.Payload)
		},
		ParentIDOf: func(node *Node[T]) (K, bool) {
			return parentID(node.Payload)
		},
		LinkTo: func(parent, child *Node[T]) {
			parent.AddChild(child)
		},
	}
}
