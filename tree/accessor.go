package tree

// Accessor gives the tree operations access to the children of a node.
//
// Children returns the ordered children of node. ok is false if node does
// not carry a children collection at all, which is different from carrying
// an empty one (Filter keeps that distinction in its result).
type Accessor[T any] interface {
	Children(node T) (children []T, ok bool)
}

// Rebuilder is an Accessor which is able to compose new nodes.
// It is needed for operations returning modified copies of a tree.
//
// Clone returns a shallow copy of node. SetChildren replaces the children
// collection of node and returns the (possibly new) node value. Filter
// calls SetChildren on clones only.
type Rebuilder[T any] interface {
	Accessor[T]
	Clone(node T) T
	SetChildren(node T, children []T) T
}

// Linker connects nodes of a flat list to a tree, see BuildFromList.
//
// Prepare is called once per list item before any linking and returns the
// item with an empty children collection. ID returns the key an item is
// registered with, ParentID the key of its parent; both report false if the
// item carries no usable key. Link appends child to the children of parent.
type Linker[T any, K comparable] interface {
	Prepare(node T) T
	ID(node T) (K, bool)
	ParentID(node T) (K, bool)
	Link(parent, child T)
}

// --- Adapters --------------------------------------------------------------

// ChildrenFunc adapts a function returning the children of a node to an
// Accessor. A nil result is reported as "no children collection".
type ChildrenFunc[T any] func(node T) []T

// Children calls f(node).
func (f ChildrenFunc[T]) Children(node T) ([]T, bool) {
	ch := f(node)
	return ch, ch != nil
}

// Shape bundles functions to form a Rebuilder. ChildrenOf is mandatory.
// If CloneOf is nil, nodes are copied by assignment, which is a shallow copy
// for struct types and no copy at all for pointer types. If WithChildren is
// nil, SetChildren returns the node unchanged.
type Shape[T any] struct {
	ChildrenOf   func(node T) []T
	CloneOf      func(node T) T
	WithChildren func(node T, children []T) T
}

// Children calls s.ChildrenOf(node).
func (s Shape[T]) Children(node T) ([]T, bool) {
	if s.ChildrenOf == nil {
		return nil, false
	}
	ch := s.ChildrenOf(node)
	return ch, ch != nil
}

// Clone calls s.CloneOf(node), if present.
func (s Shape[T]) Clone(node T) T {
	if s.CloneOf == nil {
		return node
	}
	return s.CloneOf(node)
}

// SetChildren calls s.WithChildren(node, children), if present.
func (s Shape[T]) SetChildren(node T, children []T) T {
	if s.WithChildren == nil {
		return node
	}
	return s.WithChildren(node, children)
}

var _ Rebuilder[int] = Shape[int]{}

// Links bundles functions to form a Linker. IDOf, ParentIDOf and LinkTo are
// mandatory, PrepareFn is optional.
type Links[T any, K comparable] struct {
	PrepareFn  func(node T) T
	IDOf       func(node T) (K, bool)
	ParentIDOf func(node T) (K, bool)
	LinkTo     func(parent, child T)
}

// Prepare calls l.PrepareFn(node), if present.
func (l Links[T, K]) Prepare(node T) T {
	if l.PrepareFn == nil {
		return node
	}
	return l.PrepareFn(node)
}

// ID calls l.IDOf(node).
func (l Links[T, K]) ID(node T) (K, bool) {
	return l.IDOf(node)
}

// ParentID calls l.ParentIDOf(node).
func (l Links[T, K]) ParentID(node T) (K, bool) {
	return l.ParentIDOf(node)
}

// Link calls l.LinkTo(parent, child).
func (l Links[T, K]) Link(parent, child T) {
	l.LinkTo(parent, child)
}

var _ Linker[int, int] = Links[int, int]{}
