package pphtml

import (
	"fmt"
	"strconv"
)

// Value is the result of resolving a Node through an Evaluator. The
// renderer and attribute parser only ever see Values, so the decision of
// what a node means (text vs number vs shorthand token vs subtree) is
// made exactly once, by the evaluator.
type Value interface {
	value()
}

// TextValue is resolved text content.
type TextValue struct {
	Value string
}

func (TextValue) value() {}

func (v TextValue) String() string { return v.Value }

// NumberValue is resolved numeric content.
type NumberValue struct {
	Value float64
}

func (NumberValue) value() {}

func (v NumberValue) String() string { return formatNumber(v.Value) }

// TagValue is a resolved symbol-like token, sigil included. The
// attribute parser classifies these; outside the shorthand prefix they
// render as their literal name.
type TagValue struct {
	Name string
}

func (TagValue) value() {}

func (v TagValue) String() string { return v.Name }

// NestedValue is a resolved subtree.
type NestedValue struct {
	Node Node
}

func (NestedValue) value() {}

type defaultEvaluator struct{}

// DefaultEvaluator resolves literal nodes directly and Expr nodes by
// calling their thunk. Expr failures and unresolvable results wrap
// ErrEvaluation.
var DefaultEvaluator Evaluator = defaultEvaluator{}

func (e defaultEvaluator) Eval(n Node) (Value, error) {
	switch n := n.(type) {
	case Element:
		return NestedValue{Node: n}, nil
	case Text:
		return TextValue{Value: n.Value}, nil
	case Number:
		return NumberValue{Value: n.Value}, nil
	case Sym:
		return TagValue{Name: n.Name}, nil
	case Nested:
		return e.Eval(n.Value)
	case Expr:
		if n.Fn == nil {
			return nil, fmt.Errorf("%w: expression has no thunk", ErrEvaluation)
		}
		out, err := n.Fn()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEvaluation, err)
		}
		return ValueOf(out)
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrEvaluation)
	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrEvaluation, n)
	}
}

// ValueOf coerces a plain Go value into a Value: strings become text,
// numeric types become numbers, Node values become nested subtrees, and
// Values pass through unchanged. Anything else wraps ErrEvaluation.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case string:
		return TextValue{Value: v}, nil
	case int:
		return NumberValue{Value: float64(v)}, nil
	case int8:
		return NumberValue{Value: float64(v)}, nil
	case int16:
		return NumberValue{Value: float64(v)}, nil
	case int32:
		return NumberValue{Value: float64(v)}, nil
	case int64:
		return NumberValue{Value: float64(v)}, nil
	case uint:
		return NumberValue{Value: float64(v)}, nil
	case uint8:
		return NumberValue{Value: float64(v)}, nil
	case uint16:
		return NumberValue{Value: float64(v)}, nil
	case uint32:
		return NumberValue{Value: float64(v)}, nil
	case uint64:
		return NumberValue{Value: float64(v)}, nil
	case float32:
		return NumberValue{Value: float64(v)}, nil
	case float64:
		return NumberValue{Value: v}, nil
	case Node:
		return DefaultEvaluator.Eval(v)
	default:
		return nil, fmt.Errorf("%w: cannot resolve %T to a value", ErrEvaluation, v)
	}
}

// formatNumber renders a float the way the output expects: integral
// values without a decimal point.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// valueText renders a Value as attribute or inline text. Nested values
// have no flat text form and yield the empty string.
func valueText(v Value) string {
	switch v := v.(type) {
	case TextValue:
		return v.Value
	case NumberValue:
		return formatNumber(v.Value)
	case TagValue:
		return v.Name
	default:
		return ""
	}
}
