package tree

// BreadthFirst traverses a forest level by level, starting with the roots.
// All nodes of depth k are visited before any node of depth k+1, siblings from
// left to right. Nil nodes are skipped.
//
// If visit returns false, the traversal stops immediately and no further
// node is visited.
//
//     err := tree.BreadthFirst(roots, tree.Fields(), func(n tree.Record) bool {
//         fmt.Println(n["name"])
//         return true
//     })
//
func BreadthFirst[T any](roots []T, acc Accessor[T], visit func(node T) bool) error {
	if visit == nil {
		tracer().Errorf("breadth-first traversal called without visitor")
		return ErrNilVisitor
	}
	if acc == nil {
		return ErrNilAccessor
	}
	queue := make([]T, len(roots))
	copy(queue, roots)
	for len(queue) > 0 {
		node := queue[0]
		var zero T
		queue[0] = zero // do not hold on to visited nodes
		queue = queue[1:]
		if isNil(node) {
			continue
		}
		if !visit(node) {
			tracer().Debugf("breadth-first traversal stopped by visitor")
			return nil
		}
		if children, ok := acc.Children(node); ok && len(children) > 0 {
			queue = append(queue, children...)
		}
	}
	return nil
}

// DepthFirst traverses a forest depth first. visit is called with the node, its
// parent (the zero value for roots) and its level (0 for roots).
//
// With the default order (PreOrder) a node is visited before its children,
// with PostOrder after all of its children and their subtrees.
// For the forest [ a(b, c), d(e, f) ] pre-order visits a b c d e f, post-order
// visits b c a e f d.
//
// If visit returns false, the complete traversal stops, not just the
// current subtree. Nil nodes are skipped.
func DepthFirst[T any](roots []T, acc Accessor[T], visit func(node, parent T, level int) bool,
	opts ...Option) error {
	//
	if visit == nil {
		tracer().Errorf("depth-first traversal called without visitor")
		return ErrNilVisitor
	}
	if acc == nil {
		return ErrNilAccessor
	}
	c := configure(opts)
	var root T
	walkDepthFirst(roots, root, 0, acc, visit, c.order)
	return nil
}

// walkDepthFirst returns false if the traversal has been stopped.
func walkDepthFirst[T any](nodes []T, parent T, level int, acc Accessor[T],
	visit func(node, parent T, level int) bool, order Order) bool {
	//
	for _, node := range nodes {
		if isNil(node) {
			continue
		}
		if order == Pre && !visit(node, parent, level) {
			return false
		}
		if children, ok := acc.Children(node); ok {
			if !walkDepthFirst(children, node, level+1, acc, visit, order) {
				return false
			}
		}
		if order == Post && !visit(node, parent, level) {
			return false
		}
	}
	return true
}
