package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a display value that remembers whether it was given as text or
// as a number. The distinction matters for price formatting: numbers are
// fixed to two decimals, text is passed through.
type Value struct {
	text   string
	number float64
	isNum  bool
}

// Text returns a textual Value.
func Text(s string) Value { return Value{text: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{number: f, isNum: true} }

// IsNumber reports whether v was given as a number.
func (v Value) IsNumber() bool { return v.isNum }

// Float returns the numeric value, if v is a number.
func (v Value) Float() (float64, bool) { return v.number, v.isNum }

// String renders v the way it is displayed when no formatting applies.
// Numbers use the shortest representation, so 1 renders as "1" and 51.6
// as "51.6".
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			var n int64
			if err := node.Decode(&n); err != nil {
				return fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
			}
			f = float64(n)
		}
		*v = Number(f)
	case "!!null":
		*v = Value{}
	default:
		*v = Text(node.Value)
	}
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.isNum {
		return v.number, nil
	}
	return v.text, nil
}

// Values is the value side of a labelled line. In a document it may be a
// single scalar, a list of scalars, or a list mixing scalars and lists of
// sub-lines; nested lists are flattened in order.
type Values []Value

func (vs *Values) UnmarshalYAML(node *yaml.Node) error {
	var out Values
	if err := flattenValues(node, &out); err != nil {
		return err
	}
	*vs = out
	return nil
}

func flattenValues(node *yaml.Node, out *Values) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v Value
		if err := v.UnmarshalYAML(node); err != nil {
			return err
		}
		*out = append(*out, v)
	case yaml.SequenceNode:
		for _, child := range node.Content {
			if err := flattenValues(child, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("line %d: values must be scalars or lists", node.Line)
	}
	return nil
}

func (vs Values) MarshalYAML() (interface{}, error) {
	if len(vs) == 1 {
		return vs[0], nil
	}
	return []Value(vs), nil
}

// Strings is a convenience constructor for textual values.
func Strings(s ...string) Values {
	vs := make(Values, len(s))
	for i, x := range s {
		vs[i] = Text(x)
	}
	return vs
}

// Equal reports whether v and o hold the same kind and value.
func (v Value) Equal(o Value) bool {
	return v.isNum == o.isNum && v.text == o.text && v.number == o.number
}
