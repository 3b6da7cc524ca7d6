package tree

import "fmt"

// Record is a node in the form of a property bag, as produced by decoding
// JSON or YAML documents into interface{} values.
type Record map[string]interface{}

// Get returns the value of property key and whether the property is set to a
// non-nil value.
func (r Record) Get(key string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r[key]
	return v, ok && v != nil
}

// Text returns the value of property key in its default string format, or
// the empty string if it is not set.
func (r Record) Text(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprint(v)
}

// RecordShape accesses Records by a resolved set of field names.
// It implements Accessor and Rebuilder for Record.
type RecordShape struct {
	names FieldNames
}

// Fields returns a RecordShape for the given field names, merged over the
// defaults (see ResolveFieldNames).
//
//     shape := tree.Fields(tree.FieldNames{Children: "sub"})
//     nodes, err := tree.Find(roots, shape, isLeaf)
//
func Fields(overrides ...FieldNames) RecordShape {
	return RecordShape{names: ResolveFieldNames(overrides...)}
}

// Names returns the field names of this shape.
func (s RecordShape) Names() FieldNames {
	return s.names
}

// Children returns the children of a record. Children may be stored as
// []Record, []map[string]interface{} or []interface{}; entries of the latter
// which are not records are dropped, nil entries are kept as nil records.
func (s RecordShape) Children(node Record) ([]Record, bool) {
	v, ok := node.Get(s.names.Children)
	if !ok {
		return nil, false
	}
	return asRecordSlice(v)
}

// Clone returns a shallow copy of node.
func (s RecordShape) Clone(node Record) Record {
	if node == nil {
		return nil
	}
	c := make(Record, len(node))
	for k, v := range node {
		c[k] = v
	}
	return c
}

// SetChildren stores children in the children field of node.
func (s RecordShape) SetChildren(node Record, children []Record) Record {
	if node == nil {
		return nil
	}
	if children == nil {
		children = []Record{}
	}
	node[s.names.Children] = children
	return node
}

var _ Rebuilder[Record] = RecordShape{}

// AsRecords interprets a decoded document as a forest of records.
// A single object is a forest of one tree, a list is a forest.
// It reports false if v is neither.
func AsRecords(v interface{}) ([]Record, bool) {
	if r, ok := asRecord(v); ok {
		return []Record{r}, true
	}
	return asRecordSlice(v)
}

func asRecord(v interface{}) (Record, bool) {
	switch r := v.(type) {
	case Record:
		return r, true
	case map[string]interface{}:
		return Record(r), true
	}
	return nil, false
}

func asRecordSlice(v interface{}) ([]Record, bool) {
	switch ch := v.(type) {
	case []Record:
		return ch, true
	case []map[string]interface{}:
		records := make([]Record, len(ch))
		for i, m := range ch {
			records[i] = Record(m)
		}
		return records, true
	case []interface{}:
		records := make([]Record, 0, len(ch))
		for _, x := range ch {
			if x == nil {
				records = append(records, nil)
			} else if r, ok := asRecord(x); ok {
				records = append(records, r)
			} else {
				tracer().Debugf("dropping child of type %T", x)
			}
		}
		return records, true
	}
	return nil, false
}
