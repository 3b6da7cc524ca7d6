package tree

// Flatten returns all nodes of a forest as a flat list in pre-order: every
// node is directly followed by the nodes of its subtree, before its next
// sibling. The list contains the original nodes, each one exactly once;
// nodes keep their children. Nil nodes are dropped.
//
// An observer registered with OnEachTraverse is called for every node in
// the order of the result.
func Flatten[T any](roots []T, acc Accessor[T], opts ...Option) ([]T, error) {
	if acc == nil {
		return nil, ErrNilAccessor
	}
	c := configure(opts)
	observe, err := observerFor[T](c)
	if err != nil {
		return nil, err
	}
	list := make([]T, len(roots))
	copy(list, roots)
	for i := 0; i < len(list); i++ { // list grows while iterating
		node := list[i]
		if isNil(node) {
			list = append(list[:i], list[i+1:]...)
			i--
			continue
		}
		observe(node)
		children, ok := acc.Children(node)
		if !ok || len(children) == 0 {
			continue
		}
		// splice children in right after node
		rest := len(list) - (i + 1)
		list = append(list, children...)
		copy(list[i+1+len(children):], list[i+1:i+1+rest])
		copy(list[i+1:], children)
	}
	return list, nil
}
