package pphtml

import "strings"

// spaceIndenter is the default Indenter: nesting depth counted per line,
// a fixed number of spaces per level.
type spaceIndenter struct {
	width int
}

// NewIndenter returns an Indenter that prefixes each line with width
// spaces per nesting level. Existing leading whitespace is replaced, so
// indenting is idempotent.
func NewIndenter(width int) Indenter {
	if width < 0 {
		width = 0
	}
	return spaceIndenter{width: width}
}

func (si spaceIndenter) Indent(markup string) string {
	lines := strings.Split(markup, "\n")
	var out strings.Builder
	out.Grow(len(markup) + len(lines)*si.width)

	depth := 0
	for i, line := range lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		t := strings.TrimLeft(line, " \t")
		if t == "" {
			continue
		}
		if strings.HasPrefix(t, "</") && depth > 0 {
			depth--
		}
		out.WriteString(strings.Repeat(" ", depth*si.width))
		out.WriteString(t)
		if opensLevel(t) {
			depth++
		}
	}
	return out.String()
}

// opensLevel reports whether a line consisting of one opening tag starts
// a deeper level: not a closer, not self-closing, not a declaration or
// void element, and not a leaf line that closes itself.
func opensLevel(line string) bool {
	if !strings.HasPrefix(line, "<") ||
		strings.HasPrefix(line, "</") ||
		strings.HasPrefix(line, "<!") ||
		strings.HasPrefix(line, "<?") {
		return false
	}
	if strings.HasSuffix(line, "/>") || strings.Contains(line, "</") {
		return false
	}
	return !voidTagOpen(line)
}
