package pphtml

// DefaultXMLHeader is the declaration line prepended to XML output.
const DefaultXMLHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// Options holds the call-scoped configuration of one compile. Every
// Render call builds its own Options from the defaults plus the supplied
// Option funcs, so concurrent and nested compiles never share mode.
type Options struct {
	xml        bool
	doctype    []string
	registry   *TagRegistry
	extensions []string
	evaluator  Evaluator
	xmlHeader  string
	indenter   Indenter
}

// Option customizes one compile call.
type Option func(*Options)

// XML selects XML semantics: always-paired elements (empty ones
// collapse to <tag/>), the fixed declaration header, and the XML
// reformatting rules. The default is HTML.
func XML() Option {
	return func(o *Options) { o.xml = true }
}

// WithDoctype sets the words emitted after DOCTYPE for HTML documents
// whose root tag is html. The default is "html".
func WithDoctype(params ...string) Option {
	return func(o *Options) { o.doctype = params }
}

// WithTags allows additional tag names beyond the standard HTML5 set for
// this call.
func WithTags(tags ...string) Option {
	return func(o *Options) { o.extensions = append(o.extensions, tags...) }
}

// WithRegistry uses a caller-managed tag registry instead of
// DefaultRegistry. Extensions from WithTags apply on top for the one
// call; the supplied registry itself is never modified.
func WithRegistry(r *TagRegistry) Option {
	return func(o *Options) { o.registry = r }
}

// WithEvaluator resolves expressions with a custom evaluator.
func WithEvaluator(ev Evaluator) Option {
	return func(o *Options) { o.evaluator = ev }
}

// WithXMLHeader overrides the fixed XML declaration line.
func WithXMLHeader(header string) Option {
	return func(o *Options) { o.xmlHeader = header }
}

// WithIndenter sets the indenter Preview uses.
func WithIndenter(in Indenter) Option {
	return func(o *Options) { o.indenter = in }
}

func newOptions(opts []Option) *Options {
	o := &Options{
		doctype:   []string{"html"},
		evaluator: DefaultEvaluator,
		xmlHeader: DefaultXMLHeader,
		indenter:  NewIndenter(2),
	}
	for _, opt := range opts {
		opt(o)
	}
	switch {
	case o.registry == nil && len(o.extensions) == 0:
		o.registry = DefaultRegistry
	case o.registry == nil:
		o.registry = NewTagRegistry(o.extensions...)
	case len(o.extensions) > 0:
		// WithTags stays call-scoped even over a shared registry: the
		// caller's registry is copied, never mutated.
		o.registry = NewTagRegistry(append(o.registry.Extensions(), o.extensions...)...)
	}
	return o
}
