package pphtml

// Node is the input tree model. A document is an Element whose Args mix
// attribute shorthand tokens and children; the attribute parser decides
// where the shorthand prefix ends.
//
// Variants:
//   - Element: a tagged subtree, e.g. (div ...)
//   - Text: literal text content, emitted verbatim (no escaping)
//   - Number: numeric content, stringified on output
//   - Sym: a symbol-like token; with a leading sigil (@ . :) it is
//     attribute shorthand, otherwise it renders as its literal name
//   - Expr: a deferred expression resolved by the Evaluator
//   - Nested: a child produced by the evaluator that is itself a subtree
type Node interface {
	node()
}

// Element is a tagged subtree. Args holds the attribute shorthand prefix
// followed by children, in source order.
type Element struct {
	Tag  string
	Args []Node
}

func (Element) node() {}

// Text is literal text content. It is emitted verbatim; escaping is the
// caller's responsibility.
type Text struct {
	Value string
}

func (Text) node() {}

// Number is numeric content. Integral values render without a decimal
// point (42, not 42.0).
type Number struct {
	Value float64
}

func (Number) node() {}

// Sym is a symbol-like token. Symbols beginning with @, . or : form the
// attribute shorthand prefix of an element; any other symbol renders as
// its literal name.
type Sym struct {
	Name string
}

func (Sym) node() {}

// Expr is a deferred expression. The evaluator calls Fn and coerces the
// result: strings become text, numbers become numeric content, and Node
// values become nested subtrees.
//
//	pphtml.Expr{Fn: func() (any, error) { return user.Name, nil }}
type Expr struct {
	Fn func() (any, error)
}

func (Expr) node() {}

// Nested wraps a child that is itself a subtree, typically produced by
// an evaluator resolving an expression to markup.
type Nested struct {
	Value Node
}

func (Nested) node() {}

// El builds an Element. It reads well when composing trees in Go:
//
//	pphtml.El("div", pphtml.Sym{"@main"}, pphtml.Text{"hello"})
func El(tag string, args ...Node) Element {
	return Element{Tag: tag, Args: args}
}
