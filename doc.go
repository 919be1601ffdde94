// Package pphtml compiles symbolic node trees into readable HTML or XML
// markup.
//
// A document is described as a nested tree of elements whose leading
// arguments carry attribute shorthand:
//
//	tree := pphtml.El("div",
//	    pphtml.Sym{"@main"},          // id="main"
//	    pphtml.Sym{".card"},          // class="card"
//	    pphtml.Sym{".wide"},          // classes merge: class="card wide"
//	    pphtml.Sym{":data-kind"},     // takes the next item as its value
//	    pphtml.Text{"note"},          // data-kind="note"
//	    pphtml.Text{"hello"},         // first non-shorthand item: a child
//	    pphtml.El("br"),
//	)
//	out, err := pphtml.Render(tree)
//
// produces
//
//	<div id="main" class="card wide" data-kind="note">
//	hello
//	<br/>
//	</div>
//
// # Attribute Shorthand
//
// Three sigils introduce attributes at the front of an element's
// argument list:
//   - @name sets id
//   - .name appends to class; repeated classes are space-joined in order
//   - :name takes the next argument as its value when that argument
//     resolves to text or a number, and is a boolean attribute otherwise
//
// The first argument that is not a sigil token ends the attribute
// prefix; it and everything after it are children.
//
// # Modes
//
// HTML is the default: empty elements such as br and img self-close, and
// an html root gains a doctype line (words configurable via
// WithDoctype). XML mode (the XML option) pairs every element,
// collapsing genuinely empty ones to <tag/>, and prefixes the output
// with a fixed <?xml ...?> declaration.
//
// Tags are validated against the standard HTML5 set plus a per-call
// extension allow-list (WithTags); unknown tags fail the whole compile
// with ErrInvalidTag. Text content is emitted verbatim; escaping is the
// caller's concern.
//
// # Dynamic Content
//
// Expr nodes defer to a thunk, and the Evaluator interface lets callers
// resolve their own node semantics (variables, components, lookups).
// All shorthand classification happens on evaluator results, so dynamic
// values participate in attributes and children alike.
//
// # Layout
//
// Render breaks lines by element structure: an element with nested
// elements breaks after its opening tag, a leaf occupies one line, and
// each run of inline text gets its own line. ReformatHTML and
// ReformatXML apply the same layout to markup that arrived as flat text.
// True indentation is layered on top by an Indenter; Preview wires the
// two together for display.
//
// # Configuration
//
// Everything is call-scoped: mode, doctype words, tag extensions,
// evaluator, and header travel in Options built per Render call, so
// concurrent and nested compiles are safe by construction.
//
// Subpackages: lib/sexp parses the textual tree-literal syntax,
// lib/encoding provides a compact binary tree codec, and lib/lower
// converts trees into gomponents nodes.
package pphtml
