package tree

import (
	"fmt"
	"reflect"
)

// BuildFromList reconstructs a forest from a flat list of items, each
// knowing the id of its parent. This is the only operation modifying its
// input: items are prepared (given an empty children collection) and linked
// to each other in place. T therefore has to be a reference type, such as a
// pointer or a Record.
//
// Items are linked in two passes. The first one prepares every item and
// registers it by its id. The second one appends every item to the children
// of its parent, in list order. Items without a usable parent id, items
// whose parent id is not registered and items naming themselves as parent
// become roots, in list order. This is not an error. Nil items are skipped.
//
// If an id occurs more than once, the last item wins and earlier items with
// that id cannot become parents. Option RejectDuplicateIDs reports this
// situation as ErrDuplicateID instead, before any item is linked.
func BuildFromList[T any, K comparable](list []T, lk Linker[T, K], opts ...Option) ([]T, error) {
	if lk == nil {
		return nil, ErrNilAccessor
	}
	c := configure(opts)
	items := make([]T, len(list))
	registry := make(map[K]T, len(list))
	for i, item := range list {
		if isNil(item) {
			continue
		}
		item = lk.Prepare(item)
		items[i] = item
		if id, ok := lk.ID(item); ok {
			if _, exists := registry[id]; exists {
				if c.strictIDs {
					tracer().Errorf("build tree: duplicate id %v", id)
					return nil, fmt.Errorf("%w: %v", ErrDuplicateID, id)
				}
				tracer().Debugf("build tree: id %v registered twice, last one wins", id)
			}
			registry[id] = item
		}
	}
	roots := []T{}
	for _, item := range items {
		if isNil(item) {
			continue
		}
		if parent, ok := parentOf(item, lk, registry); ok {
			lk.Link(parent, item)
			continue
		}
		roots = append(roots, item)
	}
	tracer().Debugf("build tree: %d items, %d roots", len(items), len(roots))
	return roots, nil
}

func parentOf[T any, K comparable](item T, lk Linker[T, K], registry map[K]T) (T, bool) {
	var none T
	pid, ok := lk.ParentID(item)
	if !ok {
		return none, false
	}
	if id, ok := lk.ID(item); ok && id == pid {
		return none, false
	}
	parent, found := registry[pid]
	return parent, found
}

// --- Records ---------------------------------------------------------------

// BuildRecords is BuildFromList for Records.
// Option ListFields names the id and parent id fields of the list items,
// option TreeFields names the fields of the resulting tree nodes; both
// default to { id, parentId, children }. If TreeFields names different
// id or parent id fields, the values are copied over to these fields.
// The children field of the tree field names is reset to an empty list.
//
// Ids and parent ids which are missing, nil, the empty string or not
// comparable are not usable as keys.
func BuildRecords(list []Record, opts ...Option) ([]Record, error) {
	c := configure(opts)
	lk := recordLinker{list: DefaultFieldNames(), tree: DefaultFieldNames()}
	if c.listFields != nil {
		lk.list = ResolveFieldNames(*c.listFields)
	}
	if c.treeFields != nil {
		lk.tree = ResolveFieldNames(*c.treeFields)
		keys := lk.tree
		keys.Children = lk.list.Children // children are never copied over
		lk.rename = !keys.Equal(lk.list)
	}
	return BuildFromList[Record, interface{}](list, lk, opts...)
}

type recordLinker struct {
	list   FieldNames
	tree   FieldNames
	rename bool
}

func (lk recordLinker) Prepare(item Record) Record {
	if item == nil {
		return nil
	}
	if lk.rename {
		if v, ok := item[lk.list.ID]; ok {
			item[lk.tree.ID] = v
		}
		if v, ok := item[lk.list.ParentID]; ok {
			item[lk.tree.ParentID] = v
		}
	}
	item[lk.tree.Children] = []Record{}
	return item
}

func (lk recordLinker) ID(item Record) (interface{}, bool) {
	return recordKey(item, lk.list.ID)
}

func (lk recordLinker) ParentID(item Record) (interface{}, bool) {
	return recordKey(item, lk.list.ParentID)
}

func (lk recordLinker) Link(parent, child Record) {
	children, _ := parent[lk.tree.Children].([]Record)
	parent[lk.tree.Children] = append(children, child)
}

func recordKey(item Record, field string) (interface{}, bool) {
	v, ok := item.Get(field)
	if !ok {
		return nil, false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil, false
	}
	if !reflect.ValueOf(v).Comparable() {
		return nil, false
	}
	return v, true
}
