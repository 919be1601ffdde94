package pphtml

import (
	"fmt"
	"strings"
)

// Attr is one rendered attribute. A nil Val means a boolean attribute:
// the key is emitted with no value.
type Attr struct {
	Key string
	Val Value
}

// ParseAttrs extracts the leading attribute-shorthand prefix of an
// element's argument list. It scans from the front, resolving each item
// through the evaluator:
//
//	@x        id="x"
//	.x        class="x" (may repeat; merged later)
//	:x value  x="value" when the next item resolves to text or a number
//	:x        x (boolean) otherwise
//
// Scanning stops at the first item that does not resolve to a
// symbol-like token with one of the three sigils; that item and the rest
// are children. The returned count tells the caller where the split is.
//
// Note the inherited ambiguity of `:x` followed by a child: whether the
// next item becomes the attribute's value depends only on its resolved
// type. A string or number child directly after a boolean-intended
// attribute is consumed as the value. This is part of the grammar.
func ParseAttrs(ev Evaluator, args []Node) (int, []Attr, error) {
	if ev == nil {
		ev = DefaultEvaluator
	}

	var flat []any
	i := 0
scan:
	for i < len(args) {
		v, err := ev.Eval(args[i])
		if err != nil {
			return 0, nil, err
		}
		tok, ok := v.(TagValue)
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(tok.Name, "@"):
			flat = append(flat, "id", TextValue{Value: tok.Name[1:]})
			i++
		case strings.HasPrefix(tok.Name, "."):
			flat = append(flat, "class", TextValue{Value: tok.Name[1:]})
			i++
		case strings.HasPrefix(tok.Name, ":"):
			key := tok.Name[1:]
			if i+1 < len(args) {
				next, err := ev.Eval(args[i+1])
				if err != nil {
					return 0, nil, err
				}
				switch next.(type) {
				case TextValue, NumberValue:
					flat = append(flat, key, next)
					i += 2
					continue
				}
			}
			flat = append(flat, key, nil)
			i++
		default:
			// A bare symbol is not shorthand; it and everything after
			// are children.
			break scan
		}
	}

	attrs, err := AttrPairs(flat...)
	if err != nil {
		return 0, nil, err
	}
	return i, attrs, nil
}

// AttrPairs builds an attribute list from a flat interleaved sequence of
// keys and values. Keys must be strings; values may be Values, plain
// strings or numbers (coerced via ValueOf), or nil for boolean
// attributes. A sequence of odd length, or a non-string in a key slot,
// is rejected with ErrMalformedAttrList rather than silently misaligning
// the pairs that follow.
func AttrPairs(items ...any) ([]Attr, error) {
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("%w: %d items, want key/value pairs", ErrMalformedAttrList, len(items))
	}
	attrs := make([]Attr, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		key, ok := items[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: key at position %d is %T, want string", ErrMalformedAttrList, i, items[i])
		}
		a := Attr{Key: key}
		if items[i+1] != nil {
			v, err := ValueOf(items[i+1])
			if err != nil {
				return nil, err
			}
			a.Val = v
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// MergeClasses combines repeated class attributes into one. The merged
// value is the space-joined concatenation of every class value in
// left-to-right order (numbers stringified), stored at the first class
// position; later class entries are dropped. Non-class attributes keep
// their relative order and values. Lists with zero or one class entry
// are returned unchanged.
func MergeClasses(attrs []Attr) []Attr {
	first := -1
	count := 0
	for i, a := range attrs {
		if a.Key == "class" {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	if count <= 1 {
		return attrs
	}

	parts := make([]string, 0, count)
	for _, a := range attrs {
		if a.Key == "class" {
			parts = append(parts, valueText(a.Val))
		}
	}

	out := make([]Attr, 0, len(attrs)-count+1)
	for i, a := range attrs {
		if a.Key == "class" && i != first {
			continue
		}
		if i == first {
			a.Val = TextValue{Value: strings.Join(parts, " ")}
		}
		out = append(out, a)
	}
	return out
}
