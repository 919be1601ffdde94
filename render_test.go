package pphtml

import (
	"errors"
	"testing"
)

func TestRenderLeaf(t *testing.T) {
	out, err := Render(El("div", Text{"hello"}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "<div>hello</div>" {
		t.Errorf("Render() = %q, want %q", out, "<div>hello</div>")
	}
}

func TestRenderEmptyElements(t *testing.T) {
	t.Run("html self-closes", func(t *testing.T) {
		out, err := Render(El("br"))
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if out != "<br/>" {
			t.Errorf("Render() = %q, want %q", out, "<br/>")
		}
	})

	t.Run("xml collapses the empty pair", func(t *testing.T) {
		out, err := Render(El("br"), XML())
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		want := DefaultXMLHeader + "\n<br/>"
		if out != want {
			t.Errorf("Render() = %q, want %q", out, want)
		}
	})

	t.Run("void children are dropped", func(t *testing.T) {
		out, err := Render(El("br", Text{"ignored"}))
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if out != "<br/>" {
			t.Errorf("Render() = %q, want %q", out, "<br/>")
		}
	})
}

func TestRenderAttributeShorthand(t *testing.T) {
	tests := []struct {
		name string
		tree Element
		want string
	}{
		{
			name: "id and merged classes",
			tree: El("div", Sym{"@main"}, Sym{".a"}, Sym{".b"}, Text{"text"}),
			want: `<div id="main" class="a b">text</div>`,
		},
		{
			name: "valued generic attribute",
			tree: El("a", Sym{":href"}, Text{"/home"}, Text{"go"}),
			want: `<a href="/home">go</a>`,
		},
		{
			name: "numeric attribute value",
			tree: El("td", Sym{":colspan"}, Number{2}),
			want: `<td colspan="2"></td>`,
		},
		{
			name: "boolean attribute on a void element",
			tree: El("input", Sym{":disabled"}),
			want: `<input disabled/>`,
		},
		{
			name: "boolean attribute before an element child",
			tree: El("div", Sym{":hidden"}, El("p", Text{"x"})),
			want: "<div hidden>\n<p>x</p>\n</div>",
		},
		{
			name: "bare symbol ends the prefix and renders verbatim",
			tree: El("p", Sym{"foo"}),
			want: "<p>foo</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(tt.tree)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("Render() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRenderShorthandCombined(t *testing.T) {
	// A text item directly after :name becomes the attribute's value;
	// only the item after that starts the children.
	tree := El("div",
		Sym{"@main"},
		Sym{".card"},
		Sym{".wide"},
		Sym{":data-kind"},
		Text{"note"},
		Text{"hello"},
		El("br"),
	)
	out, err := Render(tree)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div id=\"main\" class=\"card wide\" data-kind=\"note\">\nhello\n<br/>\n</div>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderDoctype(t *testing.T) {
	out, err := Render(El("html", El("body")))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<!DOCTYPE html>\n<html>\n<body></body>\n</html>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderDoctypeParams(t *testing.T) {
	out, err := Render(El("html", El("body")), WithDoctype("html", "SYSTEM", `"about:legacy-compat"`))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	wantFirst := `<!DOCTYPE html SYSTEM "about:legacy-compat">`
	if got := (&TestResult{Markup: out}).Line(0); got != wantFirst {
		t.Errorf("first line = %q, want %q", got, wantFirst)
	}
}

func TestRenderXMLHeader(t *testing.T) {
	out, err := Render(El("feed", El("title", Text{"news"})), XML(), WithTags("feed"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := DefaultXMLHeader + "\n<feed>\n<title>news</title>\n</feed>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderSiblingOrder(t *testing.T) {
	out, err := Render(El("ul", El("li", Text{"a"}), El("li", Text{"b"})))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderInlineRuns(t *testing.T) {
	// Text around a nested element gets its own line; consecutive
	// inline children form one run.
	out, err := Render(El("div", Text{"hi"}, El("p", Text{"x"}), Text{"tail"}, Number{7}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div>\nhi\n<p>x</p>\ntail7\n</div>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderInvalidTag(t *testing.T) {
	_, err := Render(El("not-a-real-tag"))
	if !IsInvalidTag(err) {
		t.Fatalf("Render() error = %v, want ErrInvalidTag", err)
	}

	// The failure is uniform: nested invalid tags abort the whole
	// compile too.
	_, err = Render(El("div", El("bogus")))
	if !IsInvalidTag(err) {
		t.Fatalf("Render() nested error = %v, want ErrInvalidTag", err)
	}
}

func TestRenderExtensionTags(t *testing.T) {
	out, err := Render(El("my-widget", Text{"x"}), WithTags("my-widget"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "<my-widget>x</my-widget>" {
		t.Errorf("Render() = %q, want %q", out, "<my-widget>x</my-widget>")
	}

	// Extensions are call-scoped: without the option the tag still fails.
	if _, err := Render(El("my-widget")); !IsInvalidTag(err) {
		t.Fatalf("Render() without extension error = %v, want ErrInvalidTag", err)
	}
}

func TestRenderSharedRegistryUntouched(t *testing.T) {
	reg := NewTagRegistry("x-chart")

	out, err := Render(El("x-grid", El("x-chart")), WithRegistry(reg), WithTags("x-grid"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<x-grid>\n<x-chart></x-chart>\n</x-grid>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}

	// WithTags applied for that call only; the shared registry keeps its
	// own extension list.
	if reg.Valid("x-grid") {
		t.Error("Valid(x-grid) = true on the shared registry after the call")
	}
	if ext := reg.Extensions(); len(ext) != 1 || ext[0] != "x-chart" {
		t.Errorf("Extensions() = %v, want [x-chart]", ext)
	}
	if _, err := Render(El("x-grid"), WithRegistry(reg)); !IsInvalidTag(err) {
		t.Fatalf("Render() with shared registry error = %v, want ErrInvalidTag", err)
	}
}

func TestRenderExpr(t *testing.T) {
	tree := El("p",
		Expr{Fn: func() (any, error) { return "hi ", nil }},
		Expr{Fn: func() (any, error) { return 3, nil }},
	)
	out, err := Render(tree)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "<p>hi 3</p>" {
		t.Errorf("Render() = %q, want %q", out, "<p>hi 3</p>")
	}
}

func TestRenderExprSubtree(t *testing.T) {
	tree := El("div", Expr{Fn: func() (any, error) {
		return El("span", Text{"dyn"}), nil
	}})
	out, err := Render(tree)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div>\n<span>dyn</span>\n</div>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRenderEvaluationFailure(t *testing.T) {
	boom := errors.New("boom")
	tree := El("div", El("p"), Expr{Fn: func() (any, error) { return nil, boom }})
	_, err := Render(tree)
	if !IsEvaluation(err) {
		t.Fatalf("Render() error = %v, want ErrEvaluation", err)
	}
}

func TestRenderNonElementRoot(t *testing.T) {
	_, err := Render(Text{"just text"})
	if !errors.Is(err, ErrNotElement) {
		t.Fatalf("Render() error = %v, want ErrNotElement", err)
	}
}

func TestRenderDeterministic(t *testing.T) {
	tree := El("html", El("body", El("ul", El("li", Text{"a"}), El("li", Text{"b"}))))
	first, err := Render(tree)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Render(tree)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if again != first {
			t.Fatalf("Render() run %d = %q, want %q", i, again, first)
		}
	}
}

func TestRenderConcurrent(t *testing.T) {
	// Mode and scratch state are call-scoped; HTML and XML renders of
	// different trees must not interfere.
	htmlTree := El("div", Text{"h"})
	xmlTree := El("node", Text{"x"})

	done := make(chan error, 20)
	for i := 0; i < 10; i++ {
		go func() {
			out, err := Render(htmlTree)
			if err == nil && out != "<div>h</div>" {
				err = errors.New("html output corrupted: " + out)
			}
			done <- err
		}()
		go func() {
			out, err := Render(xmlTree, XML(), WithTags("node"))
			if err == nil && out != DefaultXMLHeader+"\n<node>x</node>" {
				err = errors.New("xml output corrupted: " + out)
			}
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

func TestRenderFlat(t *testing.T) {
	out, err := RenderFlat(El("ul", El("li", Text{"a"}), El("li", Text{"b"})))
	if err != nil {
		t.Fatalf("RenderFlat() error = %v", err)
	}
	want := "<ul><li>a</li><li>b</li></ul>"
	if out != want {
		t.Errorf("RenderFlat() = %q, want %q", out, want)
	}
}

func TestRenderNestedChild(t *testing.T) {
	out, err := Render(El("div", Nested{Value: El("p", Text{"wrapped"})}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div>\n<p>wrapped</p>\n</div>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}
