// SPDX-License-Identifier: Unlicense OR MIT

package tree

import (
	"reflect"
	"strings"
)

// Node is an element of a forest. Its identifier and children are read
// through Keys; all other content is left to render functions.
type Node = any

// Fielder is implemented by nodes that resolve fields themselves.
type Fielder interface {
	Field(name string) (any, bool)
}

// Keys names the identifier and children fields of nodes. Empty names
// select the defaults "id" and "children".
type Keys struct {
	ID       string
	Children string
}

const (
	defaultIDKey       = "id"
	defaultChildrenKey = "children"
)

func (k Keys) idKey() string {
	if k.ID == "" {
		return defaultIDKey
	}
	return k.ID
}

func (k Keys) childrenKey() string {
	if k.Children == "" {
		return defaultChildrenKey
	}
	return k.Children
}

// Normalize returns k with the defaults filled in.
func (k Keys) Normalize() Keys {
	return Keys{ID: k.idKey(), Children: k.childrenKey()}
}

// IDOf returns the identifier of n, or nil if n has none.
func (k Keys) IDOf(n Node) any {
	v, _ := field(n, k.idKey())
	return v
}

// ChildrenOf returns the children of n. A missing, nil or non-slice
// children field yields no children.
func (k Keys) ChildrenOf(n Node) []Node {
	v, ok := field(n, k.childrenKey())
	if !ok || v == nil {
		return nil
	}
	if nodes, ok := v.([]Node); ok {
		return nodes
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	nodes := make([]Node, rv.Len())
	for i := range nodes {
		nodes[i] = rv.Index(i).Interface()
	}
	return nodes
}

// HasChildren reports whether n has at least one child.
func (k Keys) HasChildren(n Node) bool {
	v, ok := field(n, k.childrenKey())
	if !ok || v == nil {
		return false
	}
	if nodes, ok := v.([]Node); ok {
		return len(nodes) > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	}
	return false
}

// field looks up name in n. Maps are indexed by string keys, structs
// by field name or `tree` tag.
func field(n Node, name string) (any, bool) {
	switch n := n.(type) {
	case nil:
		return nil, false
	case Fielder:
		return n.Field(name)
	case map[string]any:
		v, ok := n[name]
		return v, ok
	}
	rv := reflect.ValueOf(n)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	}
	return nil, false
}

func structField(rv reflect.Value, name string) (any, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("tree"), ",")
		if tag == name || (tag == "" && f.Name == name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
