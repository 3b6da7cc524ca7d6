package tree

import (
	"errors"
	"fmt"
)

// ErrNilVisitor is returned if a traversal is called without a visitor function.
var ErrNilVisitor = errors.New("traverse action should be a function")

// ErrNilPredicate is returned if a query is called without a predicate.
var ErrNilPredicate = errors.New("predicate should be a function")

// ErrNilAccessor is returned if an operation is called without a way to
// access children or link nodes.
var ErrNilAccessor = errors.New("accessor must not be nil")

// ErrObserverType is returned if an observer function registered with
// OnEachTraverse does not accept the node type of the operation.
var ErrObserverType = errors.New("observer does not match node type")

// ErrDuplicateID is returned by BuildFromList if option RejectDuplicateIDs
// is set and an id occurs more than once.
var ErrDuplicateID = errors.New("duplicate id in list")

// Order is the sequence in which DepthFirst visits a node and its subtree.
type Order int8

// Visiting orders for depth-first traversal.
const (
	Pre  Order = iota // node before its subtree
	Post              // node after its subtree
)

func (o Order) String() string {
	if o == Post {
		return "post"
	}
	return "pre"
}

type config struct {
	order        Order
	findAll      bool
	keepSubtrees bool
	strictIDs    bool
	observer     interface{}
	listFields   *FieldNames
	treeFields   *FieldNames
}

// Option is a type to configure a single call of an operation. Options not
// applicable to an operation are ignored by it.
type Option func(*config)

func configure(opts []Option) *config {
	c := &config{}
	for _, option := range opts {
		if option != nil {
			option(c)
		}
	}
	return c
}

// PreOrder lets DepthFirst visit a node before its children. This is the default.
func PreOrder() Option {
	return func(c *config) {
		c.order = Pre
	}
}

// PostOrder lets DepthFirst visit a node after all of its children.
func PostOrder() Option {
	return func(c *config) {
		c.order = Post
	}
}

// Visiting sets the order of DepthFirst.
func Visiting(order Order) Option {
	return func(c *config) {
		c.order = order
	}
}

// FindAll lets Find collect every matching node instead of the first one.
func FindAll() Option {
	return func(c *config) {
		c.findAll = true
	}
}

// KeepMatchedSubtrees lets Filter keep the complete subtree of a matching
// node, instead of pruning it as well.
func KeepMatchedSubtrees() Option {
	return func(c *config) {
		c.keepSubtrees = true
	}
}

// RejectDuplicateIDs lets BuildFromList fail with ErrDuplicateID if an id
// occurs more than once, instead of letting the last item win.
func RejectDuplicateIDs() Option {
	return func(c *config) {
		c.strictIDs = true
	}
}

// OnEachTraverse registers an observer, called for every node an operation
// steps on (Find, Filter, Flatten). The node type of f must match the node
// type of the operation, otherwise the operation fails with ErrObserverType.
func OnEachTraverse[T any](f func(node T)) Option {
	return func(c *config) {
		if f != nil {
			c.observer = f
		}
	}
}

// ListFields sets the field names BuildRecords reads from list items.
func ListFields(names FieldNames) Option {
	return func(c *config) {
		c.listFields = &names
	}
}

// TreeFields sets the field names BuildRecords writes to tree nodes.
func TreeFields(names FieldNames) Option {
	return func(c *config) {
		c.treeFields = &names
	}
}

// observerFor extracts the observer for node type T, which may be a no-op.
func observerFor[T any](c *config) (func(T), error) {
	if c.observer == nil {
		return func(T) {}, nil
	}
	f, ok := c.observer.(func(T))
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T for nodes of type %T", ErrObserverType, c.observer, zero)
	}
	return f, nil
}
