package pphtml

import (
	"fmt"
	"strings"
	"sync"
)

// builders is the scratch buffer pool. Exactly one builder is live per
// in-flight compile; it is returned on every exit path.
var builders = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

type renderer struct {
	buf    *strings.Builder
	opts   *Options
	pretty bool
}

// renderTree renders root into a pooled scratch buffer. With pretty set
// it emits a line break after every element boundary and every non-empty
// run of inline content, decided directly from tree shape.
func renderTree(root Node, opts *Options, pretty bool) (string, error) {
	buf := builders.Get().(*strings.Builder)
	defer func() {
		buf.Reset()
		builders.Put(buf)
	}()

	el, err := rootElement(opts.evaluator, root)
	if err != nil {
		return "", err
	}

	r := &renderer{buf: buf, opts: opts, pretty: pretty}
	if err := r.element(el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rootElement(ev Evaluator, root Node) (Element, error) {
	v, err := ev.Eval(root)
	if err != nil {
		return Element{}, err
	}
	nv, ok := v.(NestedValue)
	if !ok {
		return Element{}, fmt.Errorf("%w: resolved to %T", ErrNotElement, v)
	}
	el, ok := unwrapElement(nv)
	if !ok {
		return Element{}, fmt.Errorf("%w: resolved to %T", ErrNotElement, nv.Node)
	}
	return el, nil
}

func (r *renderer) element(el Element) error {
	if !r.opts.registry.Valid(el.Tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, el.Tag)
	}

	consumed, attrs, err := ParseAttrs(r.opts.evaluator, el.Args)
	if err != nil {
		return err
	}
	attrs = MergeClasses(attrs)

	children, err := r.resolve(el.Args[consumed:])
	if err != nil {
		return err
	}

	if !r.opts.xml && el.Tag == "html" {
		r.buf.WriteString("<!DOCTYPE ")
		r.buf.WriteString(strings.Join(r.opts.doctype, " "))
		r.buf.WriteByte('>')
		r.newline()
	}

	r.buf.WriteByte('<')
	r.buf.WriteString(el.Tag)
	r.writeAttrs(attrs)

	// Empty elements never take children; anything past the attribute
	// prefix is dropped. XML's always-paired skeleton collapses to the
	// self-closing form when there is nothing inside.
	if !r.opts.xml && r.opts.registry.Void(el.Tag) {
		r.buf.WriteString("/>")
		r.newline()
		return nil
	}
	if r.opts.xml && len(children) == 0 {
		r.buf.WriteString("/>")
		r.newline()
		return nil
	}
	r.buf.WriteByte('>')

	if containsElement(children) {
		r.newline()
		if err := r.children(children); err != nil {
			return err
		}
	} else {
		// Leaf: inline content only, the whole element stays on one line.
		for _, v := range children {
			if err := r.inline(v); err != nil {
				return err
			}
		}
	}

	r.buf.WriteString("</")
	r.buf.WriteString(el.Tag)
	r.buf.WriteByte('>')
	r.newline()
	return nil
}

// children emits a mixed child list: nested elements recurse, and each
// run of consecutive inline content ends with one line break.
func (r *renderer) children(children []Value) error {
	run := false
	for _, v := range children {
		if el, ok := childElement(v); ok {
			if run {
				r.newline()
				run = false
			}
			if err := r.element(el); err != nil {
				return err
			}
			continue
		}
		before := r.buf.Len()
		if err := r.inline(v); err != nil {
			return err
		}
		if r.buf.Len() > before {
			run = true
		}
	}
	if run {
		r.newline()
	}
	return nil
}

func (r *renderer) inline(v Value) error {
	switch v := v.(type) {
	case TextValue:
		r.buf.WriteString(v.Value)
	case NumberValue:
		r.buf.WriteString(formatNumber(v.Value))
	case TagValue:
		r.buf.WriteString(v.Name)
	case NestedValue:
		// A nested non-element child; resolve its node and emit that.
		inner, err := r.opts.evaluator.Eval(v.Node)
		if err != nil {
			return err
		}
		if _, ok := inner.(NestedValue); ok {
			return nil
		}
		return r.inline(inner)
	}
	return nil
}

func (r *renderer) writeAttrs(attrs []Attr) {
	for _, a := range attrs {
		r.buf.WriteByte(' ')
		r.buf.WriteString(a.Key)
		if a.Val == nil {
			continue
		}
		r.buf.WriteString(`="`)
		r.buf.WriteString(valueText(a.Val))
		r.buf.WriteByte('"')
	}
}

func (r *renderer) newline() {
	if r.pretty {
		r.buf.WriteByte('\n')
	}
}

func (r *renderer) resolve(args []Node) ([]Value, error) {
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]Value, 0, len(args))
	for _, arg := range args {
		v, err := r.opts.evaluator.Eval(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func childElement(v Value) (Element, bool) {
	nv, ok := v.(NestedValue)
	if !ok {
		return Element{}, false
	}
	return unwrapElement(nv)
}

func unwrapElement(nv NestedValue) (Element, bool) {
	n := nv.Node
	for {
		switch t := n.(type) {
		case Element:
			return t, true
		case Nested:
			n = t.Value
		default:
			return Element{}, false
		}
	}
}

func containsElement(children []Value) bool {
	for _, v := range children {
		if _, ok := childElement(v); ok {
			return true
		}
	}
	return false
}
