// Package encoding provides a compact binary codec for pphtml node
// trees, built on msgpack. It exists so parsed trees can be cached or
// shipped between processes without re-reading the textual form.
package encoding

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	pphtml "github.com/7696122/pp-html"
)

// Codec errors.
var (
	// ErrUnsupportedNode means the tree holds a node with no binary
	// form. Expr thunks are Go closures and cannot travel.
	ErrUnsupportedNode = errors.New("encoding: unsupported node")

	// ErrInvalidFormat means the data is not a tree this codec wrote.
	ErrInvalidFormat = errors.New("encoding: invalid tree format")
)

// Wire layout: each node is a small tagged array. Elements nest their
// arguments as further arrays.
const (
	wireElement = "el"
	wireText    = "txt"
	wireNumber  = "num"
	wireSymbol  = "sym"
)

// Marshal encodes a node tree. Trees containing Expr nodes fail with
// ErrUnsupportedNode: resolve dynamic content before encoding.
func Marshal(n pphtml.Node) ([]byte, error) {
	wire, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(wire)
}

// Unmarshal decodes a tree written by Marshal.
func Unmarshal(data []byte) (pphtml.Node, error) {
	var wire any
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return fromWire(wire)
}

func toWire(n pphtml.Node) (any, error) {
	switch n := n.(type) {
	case pphtml.Element:
		args := make([]any, 0, len(n.Args))
		for _, arg := range n.Args {
			w, err := toWire(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, w)
		}
		return []any{wireElement, n.Tag, args}, nil
	case pphtml.Text:
		return []any{wireText, n.Value}, nil
	case pphtml.Number:
		return []any{wireNumber, n.Value}, nil
	case pphtml.Sym:
		return []any{wireSymbol, n.Name}, nil
	case pphtml.Nested:
		return toWire(n.Value)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, n)
	}
}

func fromWire(v any) (pphtml.Node, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 {
		return nil, fmt.Errorf("%w: node is %T", ErrInvalidFormat, v)
	}
	kind, ok := arr[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: node kind is %T", ErrInvalidFormat, arr[0])
	}

	switch kind {
	case wireElement:
		if len(arr) != 3 {
			return nil, fmt.Errorf("%w: element arity %d", ErrInvalidFormat, len(arr))
		}
		tag, ok := arr[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: element tag is %T", ErrInvalidFormat, arr[1])
		}
		rawArgs, ok := arr[2].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: element args are %T", ErrInvalidFormat, arr[2])
		}
		el := pphtml.Element{Tag: tag}
		for _, raw := range rawArgs {
			arg, err := fromWire(raw)
			if err != nil {
				return nil, err
			}
			el.Args = append(el.Args, arg)
		}
		return el, nil
	case wireText:
		s, ok := arr[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: text value is %T", ErrInvalidFormat, arr[1])
		}
		return pphtml.Text{Value: s}, nil
	case wireNumber:
		f, ok := asFloat(arr[1])
		if !ok {
			return nil, fmt.Errorf("%w: number value is %T", ErrInvalidFormat, arr[1])
		}
		return pphtml.Number{Value: f}, nil
	case wireSymbol:
		s, ok := arr[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: symbol name is %T", ErrInvalidFormat, arr[1])
		}
		return pphtml.Sym{Name: s}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node kind %q", ErrInvalidFormat, kind)
	}
}

// asFloat absorbs the widths the msgpack decoder may pick for numbers.
func asFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
