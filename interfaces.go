package pphtml

// Evaluator resolves a node into a primitive Value before the attribute
// parser classifies it or the renderer emits it.
//
// The default evaluator handles literal nodes and Expr thunks. Supply a
// custom evaluator to resolve application-specific node types, look up
// variables, or intercept expressions:
//
//	type env struct{ vars map[string]any }
//
//	func (e env) Eval(n pphtml.Node) (pphtml.Value, error) {
//	    if s, ok := n.(pphtml.Sym); ok && strings.HasPrefix(s.Name, "$") {
//	        return pphtml.ValueOf(e.vars[s.Name[1:]])
//	    }
//	    return pphtml.DefaultEvaluator.Eval(n)
//	}
//
// Eval must be safe for concurrent use; one evaluator may serve several
// in-flight renders.
type Evaluator interface {
	Eval(n Node) (Value, error)
}

// Indenter turns line-broken markup into visually indented markup. It is
// only consulted by Preview; Render leaves indentation to the caller.
//
// Implementations must not change tag or attribute content, only leading
// whitespace per line.
type Indenter interface {
	Indent(markup string) string
}
