package pphtml

import (
	"io"
	"strings"
)

// Render compiles a node tree into line-broken markup.
//
// The root must resolve to an element. HTML is the default mode; pass
// XML() for XML semantics. All configuration is call-scoped, so
// concurrent Render calls never interfere:
//
//	out, err := pphtml.Render(
//	    pphtml.El("div", pphtml.Sym{"@main"}, pphtml.Text{"hello"}),
//	)
//	// <div id="main">hello</div>
//
// In HTML mode an html root is prefixed with a doctype line; in XML mode
// the output starts with the fixed declaration header. Line breaks
// follow element structure: elements with nested elements break after
// the opening tag, leaves occupy a single line. Indentation is left to
// an Indenter (see Preview).
func Render(root Node, opts ...Option) (string, error) {
	o := newOptions(opts)
	out, err := renderTree(root, o, true)
	if err != nil {
		return "", err
	}
	if o.xml {
		out = o.xmlHeader + "\n" + out
	}
	return strings.TrimSuffix(out, "\n"), nil
}

// RenderFlat compiles a node tree into markup with no line breaks at
// all, suitable as ReformatHTML/ReformatXML input or for embedding in
// single-line contexts. The XML header is not prepended.
func RenderFlat(root Node, opts ...Option) (string, error) {
	return renderTree(root, newOptions(opts), false)
}

// Preview renders root, indents the result, and writes it to w followed
// by a newline. It is a display helper on top of Render; use
// WithIndenter to change the indentation style.
func Preview(w io.Writer, root Node, opts ...Option) error {
	o := newOptions(opts)
	out, err := renderTree(root, o, true)
	if err != nil {
		return err
	}
	if o.xml {
		out = o.xmlHeader + "\n" + out
	}
	out = o.indenter.Indent(strings.TrimSuffix(out, "\n"))
	_, err = io.WriteString(w, out+"\n")
	return err
}
