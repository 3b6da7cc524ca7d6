package tree

// Find returns the first node of a forest, in breadth-first order, which
// matches predicate. With option FindAll it returns all matching nodes, in
// breadth-first discovery order. If no node matches, the result is an
// empty slice.
//
// An observer registered with OnEachTraverse is called for every node
// stepped on, before the predicate is tested.
func Find[T any](roots []T, acc Accessor[T], predicate func(node T) bool, opts ...Option) ([]T, error) {
	if predicate == nil {
		tracer().Errorf("find called without predicate")
		return nil, ErrNilPredicate
	}
	c := configure(opts)
	observe, err := observerFor[T](c)
	if err != nil {
		return nil, err
	}
	result := []T{}
	err = BreadthFirst(roots, acc, func(node T) bool {
		observe(node)
		if predicate(node) {
			result = append(result, node)
			return c.findAll
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("find: %d matching node(s)", len(result))
	return result, nil
}

// FindFirst is a shortcut for Find, returning the first match only.
func FindFirst[T any](roots []T, acc Accessor[T], predicate func(node T) bool) (T, bool, error) {
	var zero T
	result, err := Find(roots, acc, predicate)
	if err != nil || len(result) == 0 {
		return zero, false, err
	}
	return result[0], true, nil
}

// pathEntry is an entry of the work queue of FindPath.
type pathEntry[T any] struct {
	node     T
	expanded bool
}

// FindPath returns the path from a root down to the first node which matches
// predicate, the root and the matching node included. Nodes are tested in
// depth-first pre-order, i.e. the first match is the first one a depth-first
// traversal encounters. If no node matches, FindPath returns nil.
//
// For the forest [ a(b), c ] and a predicate matching b the path is [ a, b ].
//
// A node instance is expanded only once, even if it is reachable more than
// once. Node instances are told apart by address for reference types and by
// value for comparable types.
func FindPath[T any](roots []T, acc Accessor[T], predicate func(node T) bool) ([]T, error) {
	if predicate == nil {
		tracer().Errorf("find path called without predicate")
		return nil, ErrNilPredicate
	}
	if acc == nil {
		return nil, ErrNilAccessor
	}
	path := make([]T, 0, 8)
	queue := make([]pathEntry[T], len(roots))
	for i, root := range roots {
		queue[i] = pathEntry[T]{node: root}
	}
	visited := make(map[identity]struct{})
	seen := func(node T) bool {
		if id, ok := identityOf(node); ok {
			_, found := visited[id]
			return found
		}
		return false
	}
	for len(queue) > 0 {
		front := queue[0]
		if front.expanded { // subtree of front exhausted without a match
			path = path[:len(path)-1]
			queue = queue[1:]
			continue
		}
		if isNil(front.node) || seen(front.node) {
			queue = queue[1:]
			continue
		}
		queue[0].expanded = true
		if id, ok := identityOf(front.node); ok {
			visited[id] = struct{}{}
		}
		if children, ok := acc.Children(front.node); ok && len(children) > 0 {
			queue = prependChildren(queue, children)
		}
		path = append(path, front.node)
		if predicate(front.node) {
			tracer().Debugf("find path: found path of length %d", len(path))
			return path, nil
		}
	}
	return nil, nil
}

func prependChildren[T any](queue []pathEntry[T], children []T) []pathEntry[T] {
	q := make([]pathEntry[T], len(children), len(children)+len(queue))
	for i, ch := range children {
		q[i] = pathEntry[T]{node: ch}
	}
	return append(q, queue...)
}
