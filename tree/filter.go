package tree

// Filter returns a pruned copy of a forest. A node is kept if it matches
// predicate or if at least one of its descendants is kept, so the ancestors
// of every matching node are part of the result.
//
// The result never shares nodes with the input: every kept node is a
// shallow copy (see Rebuilder.Clone) with its children collection replaced
// by the filtered one. A node which has a children collection keeps one,
// even if it ends up empty; a node without one stays without one.
// Children of a matching node are filtered like any other node. With
// option KeepMatchedSubtrees, the complete subtree below a matching node is
// kept (in copy) instead.
//
// An observer registered with OnEachTraverse is called for every copied
// node in post-order, i.e. children before their parent. It sees the copy,
// with the children already filtered.
func Filter[T any](roots []T, rb Rebuilder[T], predicate func(node T) bool, opts ...Option) ([]T, error) {
	if predicate == nil {
		tracer().Errorf("filter called without predicate")
		return nil, ErrNilPredicate
	}
	if rb == nil {
		return nil, ErrNilAccessor
	}
	c := configure(opts)
	observe, err := observerFor[T](c)
	if err != nil {
		return nil, err
	}
	f := &filtering[T]{rb: rb, predicate: predicate, observe: observe, keepSubtrees: c.keepSubtrees}
	return f.filter(roots), nil
}

type filtering[T any] struct {
	rb           Rebuilder[T]
	predicate    func(T) bool
	observe      func(T)
	keepSubtrees bool
}

func (f *filtering[T]) filter(nodes []T) []T {
	kept := make([]T, 0, len(nodes))
	for _, node := range nodes {
		if isNil(node) {
			continue
		}
		cp := f.rb.Clone(node)
		children, hasChildren := f.rb.Children(cp)
		var matched, tested bool
		if f.keepSubtrees {
			matched, tested = f.predicate(cp), true
			if matched {
				if hasChildren {
					cp = f.rb.SetChildren(cp, f.copySubtrees(children))
				}
				f.observe(cp)
				kept = append(kept, cp)
				continue
			}
		}
		var keptChildren int
		if hasChildren {
			filtered := f.filter(children)
			cp = f.rb.SetChildren(cp, filtered)
			keptChildren = len(filtered)
		}
		f.observe(cp)
		if !tested {
			matched = f.predicate(cp)
		}
		if matched || keptChildren > 0 {
			kept = append(kept, cp)
		}
	}
	return kept
}

// copySubtrees copies nodes and all of their descendants, calling the
// observer in post-order.
func (f *filtering[T]) copySubtrees(nodes []T) []T {
	copies := make([]T, 0, len(nodes))
	for _, node := range nodes {
		if isNil(node) {
			continue
		}
		cp := f.rb.Clone(node)
		if children, ok := f.rb.Children(cp); ok {
			cp = f.rb.SetChildren(cp, f.copySubtrees(children))
		}
		f.observe(cp)
		copies = append(copies, cp)
	}
	return copies
}
