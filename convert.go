package mutables

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document into a tree, e.g. to seed a Store's
// initial value or hooks.
func FromYAML(b []byte) (*Node, error) {
	var v interface{}
	err := yaml.Unmarshal(b, &v)
	if err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return NewNode(v), nil
}

// FromJSON decodes a JSON document into a tree. Numbers become float64.
func FromJSON(b []byte) (*Node, error) {
	var v interface{}
	err := json.Unmarshal(b, &v)
	if err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	return NewNode(v), nil
}

// ToProto converts a tree into a google.protobuf.Value. Scalars must be
// of a type structpb understands (nil, bools, numbers, strings, []byte).
func ToProto(n *Node) (*structpb.Value, error) {
	v, err := structpb.NewValue(n.Value())
	if err != nil {
		return nil, fmt.Errorf("to proto: %w", err)
	}
	return v, nil
}

// FromProto converts a google.protobuf.Value into a tree.
func FromProto(v *structpb.Value) *Node {
	return NewNode(v.AsInterface())
}
