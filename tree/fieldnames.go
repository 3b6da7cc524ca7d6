package tree

import (
	"fmt"

	"github.com/imdario/mergo"
)

// FieldNames names the properties of a Record which hold the identity of
// a node, the identity of its parent and the collection of its children.
// An empty entry means "use the default".
type FieldNames struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	ParentID string `json:"parentId,omitempty" yaml:"parentId,omitempty" mapstructure:"parentId"`
	Children string `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// Default property names.
const (
	DefaultIDField       = "id"
	DefaultParentIDField = "parentId"
	DefaultChildrenField = "children"
)

// DefaultFieldNames returns a fresh set of the default field names
// { id, parentId, children }.
func DefaultFieldNames() FieldNames {
	return FieldNames{
		ID:       DefaultIDField,
		ParentID: DefaultParentIDField,
		Children: DefaultChildrenField,
	}
}

// ResolveFieldNames merges overrides onto the defaults, key by key.
// Later overrides win over earlier ones; empty entries never override.
//
// The resulting names are not validated. Empty or clashing names are
// a mistake of the caller.
func ResolveFieldNames(overrides ...FieldNames) FieldNames {
	names := DefaultFieldNames()
	for _, o := range overrides {
		if err := mergo.Merge(&names, o, mergo.WithOverride); err != nil {
			// cannot happen for identical struct types
			tracer().Errorf("merging field names: %v", err)
		}
	}
	return names
}

// Equal is true if fn and other name the same properties.
func (fn FieldNames) Equal(other FieldNames) bool {
	return fn == other
}

func (fn FieldNames) String() string {
	return fmt.Sprintf("{id:%q parentId:%q children:%q}", fn.ID, fn.ParentID, fn.Children)
}
