package mutables

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// Scalar nodes hold a single Go value, possibly nil.
	Scalar Kind = iota
	// Mapping nodes hold string-keyed children.
	Mapping
	// Sequence nodes hold ordered children addressed by index.
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is one position in a value or hooks tree. Nodes are mutable and
// are shared by reference, so writes through a Path are visible to every
// holder of an ancestor.
type Node struct {
	kind    Kind
	scalar  interface{}
	entries map[string]*Node
	items   []*Node
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: Mapping, entries: map[string]*Node{}}
}

// NewSequence returns a sequence node holding the given children.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: Sequence, items: items}
}

// NewScalar returns a leaf node holding v.
func NewScalar(v interface{}) *Node {
	return &Node{kind: Scalar, scalar: v}
}

// NewNode converts a plain Go value into a tree. Maps become mappings,
// keyed by the string form of their keys, and slices and arrays other
// than []byte become sequences, recursively. A *Node is deep-copied, so
// the result never shares structure with its argument. Everything else is
// a scalar.
func NewNode(v interface{}) *Node {
	switch t := v.(type) {
	case *Node:
		if t == nil {
			return NewScalar(nil)
		}
		return t.Copy()
	case map[string]interface{}:
		n := NewMapping()
		for k, e := range t {
			n.entries[k] = NewNode(e)
		}
		return n
	case []interface{}:
		items := make([]*Node, len(t))
		for i, e := range t {
			items[i] = NewNode(e)
		}
		return NewSequence(items...)
	case nil, string, bool, Handler:
		return NewScalar(t)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		n := NewMapping()
		iter := rv.MapRange()
		for iter.Next() {
			n.entries[mapKey(iter.Key())] = NewNode(iter.Value().Interface())
		}
		return n
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		items := make([]*Node, rv.Len())
		for i := range items {
			items[i] = NewNode(rv.Index(i).Interface())
		}
		return NewSequence(items...)
	}
	return NewScalar(v)
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// Copy returns a deep copy of n. Scalars are copied by value, so a
// scalar holding a pointer still shares what it points to.
func (n *Node) Copy() *Node {
	switch n.Kind() {
	case Mapping:
		c := NewMapping()
		for k, e := range n.entries {
			c.entries[k] = e.Copy()
		}
		return c
	case Sequence:
		items := make([]*Node, len(n.items))
		for i, e := range n.items {
			items[i] = e.Copy()
		}
		return NewSequence(items...)
	}
	if n == nil {
		return NewScalar(nil)
	}
	return NewScalar(n.scalar)
}

// Kind reports which variant n holds. A nil node is a nil scalar.
func (n *Node) Kind() Kind {
	if n == nil {
		return Scalar
	}
	return n.kind
}

// IsContainer is true for mappings and sequences.
func (n *Node) IsContainer() bool {
	k := n.Kind()
	return k == Mapping || k == Sequence
}

// Len is the number of children of a container, and 0 for scalars.
func (n *Node) Len() int {
	switch n.Kind() {
	case Mapping:
		return len(n.entries)
	case Sequence:
		return len(n.items)
	}
	return 0
}

// Child returns the mapping entry for key.
func (n *Node) Child(key string) (*Node, bool) {
	if n.Kind() != Mapping {
		return nil, false
	}
	c, ok := n.entries[key]
	return c, ok
}

// Index returns the i'th element of a sequence.
func (n *Node) Index(i int) (*Node, bool) {
	if n.Kind() != Sequence || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Keys returns the keys of a mapping in no particular order.
func (n *Node) Keys() []string {
	if n.Kind() != Mapping {
		return nil
	}
	keys := make([]string, 0, len(n.entries))
	for k := range n.entries {
		keys = append(keys, k)
	}
	return keys
}

// Value converts the tree rooted at n back into plain Go values:
// map[string]interface{}, []interface{}, and whatever scalars were stored.
// The result shares no structure with n.
func (n *Node) Value() interface{} {
	switch n.Kind() {
	case Mapping:
		m := make(map[string]interface{}, len(n.entries))
		for k, c := range n.entries {
			m[k] = c.Value()
		}
		return m
	case Sequence:
		s := make([]interface{}, len(n.items))
		for i, c := range n.items {
			s[i] = c.Value()
		}
		return s
	}
	if n == nil {
		return nil
	}
	return n.scalar
}

// Truthy reports whether n counts as a set hook marker. Missing and nil
// nodes, false, numeric zero, the empty string and empty containers are
// falsy.
func (n *Node) Truthy() bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case Mapping, Sequence:
		return n.Len() > 0
	}
	switch v := n.scalar.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case Handler:
		return v != nil
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	}
	rv := reflect.ValueOf(n.scalar)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan, reflect.Map, reflect.Slice:
		return !rv.IsNil()
	}
	return true
}

// MarshalJSON encodes the plain-Go form of n.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value())
}

func (n *Node) String() string {
	return fmt.Sprintf("%v", n.Value())
}
