// Package lower converts pphtml node trees into gomponents nodes, for
// callers composing pages with the gomponents API rather than flat
// markup text.
package lower

import (
	"fmt"

	g "maragu.dev/gomponents"

	pphtml "github.com/7696122/pp-html"
)

// Tree lowers a node tree with the default evaluator and registry.
func Tree(root pphtml.Node) (g.Node, error) {
	return TreeEval(pphtml.DefaultEvaluator, pphtml.DefaultRegistry, root)
}

// TreeEval lowers a node tree, resolving expressions through ev and
// validating tags against reg, so trees using extension tags lower the
// same way they render. A nil ev or reg falls back to the defaults.
// Attribute shorthand is parsed and classes merged exactly as the
// renderer does, and children become nested gomponents elements or
// text.
func TreeEval(ev pphtml.Evaluator, reg *pphtml.TagRegistry, root pphtml.Node) (g.Node, error) {
	if ev == nil {
		ev = pphtml.DefaultEvaluator
	}
	if reg == nil {
		reg = pphtml.DefaultRegistry
	}
	l := &lowerer{ev: ev, reg: reg}

	v, err := ev.Eval(root)
	if err != nil {
		return nil, err
	}
	nv, ok := v.(pphtml.NestedValue)
	if !ok {
		return nil, fmt.Errorf("%w: resolved to %T", pphtml.ErrNotElement, v)
	}
	el, ok := nv.Node.(pphtml.Element)
	if !ok {
		return nil, fmt.Errorf("%w: resolved to %T", pphtml.ErrNotElement, nv.Node)
	}
	return l.element(el)
}

type lowerer struct {
	ev  pphtml.Evaluator
	reg *pphtml.TagRegistry
}

func (l *lowerer) element(el pphtml.Element) (g.Node, error) {
	if !l.reg.Valid(el.Tag) {
		return nil, fmt.Errorf("%w: %q", pphtml.ErrInvalidTag, el.Tag)
	}

	consumed, attrs, err := pphtml.ParseAttrs(l.ev, el.Args)
	if err != nil {
		return nil, err
	}
	attrs = pphtml.MergeClasses(attrs)

	args := make([]g.Node, 0, len(attrs)+len(el.Args)-consumed)
	for _, a := range attrs {
		if a.Val == nil {
			args = append(args, g.Attr(a.Key))
			continue
		}
		args = append(args, g.Attr(a.Key, attrText(a.Val)))
	}

	for _, arg := range el.Args[consumed:] {
		v, err := l.ev.Eval(arg)
		if err != nil {
			return nil, err
		}
		child, err := l.childNode(v)
		if err != nil {
			return nil, err
		}
		if child != nil {
			args = append(args, child)
		}
	}

	return g.El(el.Tag, args...), nil
}

func (l *lowerer) childNode(v pphtml.Value) (g.Node, error) {
	switch v := v.(type) {
	case pphtml.NestedValue:
		if el, ok := v.Node.(pphtml.Element); ok {
			return l.element(el)
		}
		inner, err := l.ev.Eval(v.Node)
		if err != nil {
			return nil, err
		}
		if _, ok := inner.(pphtml.NestedValue); ok {
			return nil, nil
		}
		return l.childNode(inner)
	case pphtml.TextValue:
		return g.Text(v.Value), nil
	case pphtml.NumberValue:
		return g.Text(v.String()), nil
	case pphtml.TagValue:
		return g.Text(v.Name), nil
	default:
		return nil, nil
	}
}

func attrText(v pphtml.Value) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}
