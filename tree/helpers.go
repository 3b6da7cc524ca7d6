package tree

import (
	"reflect"
)

// isNil is true for nil interfaces and for nil values of nillable kinds
// (pointers, maps, slices, …). Zero values of other types are not nil.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// identity is a key for the instance of a node.
// Reference kinds are identified by their address, comparable values by
// themselves.
type identity struct {
	typ  reflect.Type
	addr uintptr
	val  interface{}
}

// identityOf returns the identity of v. ok is false for values which are
// neither of a reference kind nor comparable; those cannot be told apart.
func identityOf(v interface{}) (id identity, ok bool) {
	if v == nil {
		return identity{}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return identity{typ: rv.Type(), addr: rv.Pointer()}, true
	}
	if rv.Comparable() {
		return identity{typ: rv.Type(), val: v}, true
	}
	return identity{}, false
}
