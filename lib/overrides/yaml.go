package overrides

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"slices"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

var unmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	n = resolve(n)
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func isTag(n *yaml.Node, tag string) bool {
	n = resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tag
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return n.ShortTag() + " " + n.Value
	}
	return "an unsupported node"
}

// checkKeys rejects keys outside allowed and keys given twice in mapping n.
func checkKeys(n *yaml.Node, allowed ...string) error {
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i]
		if !isTag(key, "!!str") {
			return oops.Errorf("line %d: keys must be strings, got %s", key.Line, describe(key))
		}
		if !slices.Contains(allowed, key.Value) {
			return oops.Errorf("line %d: unexpected key %q (want one of %v)", key.Line, key.Value, allowed)
		}
		if seen[key.Value] {
			return oops.Errorf("line %d: key %q given twice", key.Line, key.Value)
		}
		seen[key.Value] = true
	}
	return nil
}

// decodeScalar decodes n into out without YAML's implicit conversions: a
// bool field only takes true or false, an integer only takes an integer
// literal, and so on. Types with their own UnmarshalYAML check themselves.
func decodeScalar(n *yaml.Node, out any) error {
	n = resolve(n)
	if isNull(n) {
		return oops.Errorf("line %d: null is not allowed here", n.Line)
	}
	t := reflect.TypeOf(out).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return n.Decode(out)
	}

	var want []string
	switch t.Kind() {
	case reflect.Bool:
		want = []string{"!!bool"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		want = []string{"!!int"}
	case reflect.Float32, reflect.Float64:
		want = []string{"!!int", "!!float"}
	case reflect.String:
		want = []string{"!!str"}
	case reflect.Slice:
		if n.Kind != yaml.SequenceNode {
			return oops.Errorf("line %d: expected a list, got %s", n.Line, describe(n))
		}
		return decodeList(n, reflect.ValueOf(out).Elem(), t)
	default:
		return n.Decode(out)
	}
	if n.Kind != yaml.ScalarNode || !slices.Contains(want, n.ShortTag()) {
		return oops.Errorf("line %d: expected %s, got %s", n.Line, t.Kind(), describe(n))
	}
	return n.Decode(out)
}

// decodeList decodes sequence n into dst, a slice of type t or a pointer
// chain ending in one. Each element goes through decodeScalar, so nulls and
// mistyped items are rejected instead of dropped.
func decodeList(n *yaml.Node, dst reflect.Value, t reflect.Type) error {
	list := reflect.MakeSlice(t, 0, len(n.Content))
	for i, item := range n.Content {
		elem := reflect.New(t.Elem())
		if err := decodeScalar(item, elem.Interface()); err != nil {
			return oops.Wrapf(err, "[%d]", i)
		}
		list = reflect.Append(list, elem.Elem())
	}
	for dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}
	dst.Set(list)
	return nil
}

// OneOrMany is a list that may be written as a single value in overlay
// files. A single value and a one-element list are the same thing.
type OneOrMany[T any] []T

func (m *OneOrMany[T]) UnmarshalYAML(n *yaml.Node) error {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		var v T
		if err := decodeScalar(n, &v); err != nil {
			return err
		}
		*m = OneOrMany[T]{v}
		return nil
	}
	out := make(OneOrMany[T], 0, len(n.Content))
	for i, item := range n.Content {
		var v T
		if err := decodeScalar(item, &v); err != nil {
			return oops.Wrapf(err, "[%d]", i)
		}
		out = append(out, v)
	}
	*m = out
	return nil
}

func (m OneOrMany[T]) MarshalYAML() (interface{}, error) {
	switch len(m) {
	case 0:
		return []T{}, nil
	case 1:
		return m[0], nil
	}
	return []T(m), nil
}

// ParseOverlay reads an overlay document: a single mapping from field name
// to value. An empty document is an empty overlay. JSON documents are
// accepted as well. A stream holding more than one document is rejected.
func ParseOverlay(data []byte) (Overlay, error) {
	var overlay Overlay
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return overlay, nil
		}
		return overlay, syntaxError(err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = oops.Errorf("line %d: overlay must be a single document", extra.Line)
		}
		return overlay, syntaxError(err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return overlay, nil
	}
	root := resolve(doc.Content[0])
	if isNull(root) {
		return overlay, nil
	}
	if root.Kind != yaml.MappingNode {
		return overlay, syntaxError(oops.Errorf("line %d: overlay must be a mapping of field names, got %s", root.Line, describe(root)))
	}

	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if !isTag(key, "!!str") {
			return overlay, syntaxError(oops.Errorf("line %d: field names must be strings, got %s", key.Line, describe(key)))
		}
		name := key.Value
		f, ok := registryByName[name]
		if !ok {
			return overlay, fieldError(name, ErrUnknownField, oops.Errorf("line %d: no such override", key.Line))
		}
		if seen[name] {
			return overlay, syntaxError(oops.Errorf("line %d: %s given twice", key.Line, name))
		}
		seen[name] = true
		if err := f.decode(&overlay, value); err != nil {
			return overlay, fieldError(name, classify(err), err)
		}
	}
	log.WithField("fields", overlay.Present()).Debug("Parsed overlay")
	return overlay, nil
}

// MarshalYAML renders every field, in registry order, under its field name.
// The result parses back with ParseOverlay into an overlay that reproduces c.
func (c Overrides) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range registry {
		var value yaml.Node
		if err := value.Encode(f.value(&c)); err != nil {
			return nil, oops.In("overrides").With("field", f.Name).Wrapf(err, "encode %s", f.Name)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&value,
		)
	}
	return root, nil
}
