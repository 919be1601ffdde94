package pphtml

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component wraps a node tree as a templ.Component so compiled markup
// drops straight into templ layouts and HTMX handlers:
//
//	templ.Handler(pphtml.Component(tree)).ServeHTTP(w, r)
//
// Rendering is deferred until the component renders, so a compile error
// surfaces through the component's error return.
func Component(root Node, opts ...Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(root, opts...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// RenderTo compiles root and writes the result to w.
func RenderTo(w io.Writer, root Node, opts ...Option) error {
	out, err := Render(root, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
