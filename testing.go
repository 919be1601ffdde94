package pphtml

import "strings"

// TestResult holds the output of rendering a tree for testing, with
// convenience accessors over the line-broken markup.
type TestResult struct {
	Markup string
}

// TestRender compiles root exactly as Render does and wraps the output
// for assertions:
//
//	result, err := pphtml.TestRender(tree)
//	if !result.Contains(`id="main"`) {
//	    t.Fatal("missing id attribute")
//	}
func TestRender(root Node, opts ...Option) (*TestResult, error) {
	out, err := Render(root, opts...)
	if err != nil {
		return nil, err
	}
	return &TestResult{Markup: out}, nil
}

// Contains reports whether the markup contains s.
func (r *TestResult) Contains(s string) bool {
	return strings.Contains(r.Markup, s)
}

// Lines returns the markup split into lines.
func (r *TestResult) Lines() []string {
	return strings.Split(r.Markup, "\n")
}

// Line returns line i, or the empty string when out of range.
func (r *TestResult) Line(i int) string {
	lines := r.Lines()
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
