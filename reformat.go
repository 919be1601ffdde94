package pphtml

import "strings"

// ReformatHTML inserts line breaks into flat HTML markup: elements with
// nested elements break after the opening tag, leaf elements stay on one
// line and break after the closing tag, and every non-empty run of
// inline text gets its own line. Tag and attribute content is never
// altered, and already-reformatted markup passes through unchanged.
func ReformatHTML(markup string) string {
	return reformat(markup, false)
}

// ReformatXML is ReformatHTML under XML rules: closing tags are
// classified directly and HTML void tags get no special treatment.
func ReformatXML(markup string) string {
	return reformat(markup, true)
}

type reformatter struct {
	src string
	out strings.Builder
	pos int
	xml bool
}

func reformat(src string, xml bool) string {
	f := &reformatter{src: src, xml: xml}
	f.out.Grow(len(src) + 64)
	f.leading()
	for f.pos < len(f.src) {
		f.text()
		if f.pos >= len(f.src) {
			break
		}
		f.tag()
	}
	return f.out.String()
}

// leading skips past a doctype or declaration line at the very start,
// breaking the line after it.
func (f *reformatter) leading() {
	if !strings.HasPrefix(f.src, "<!") && !strings.HasPrefix(f.src, "<?") {
		return
	}
	end := f.tagEnd(0)
	f.emit(end)
	f.breakLine()
}

// text copies the inline run up to the next tag. The run keeps its
// content verbatim except for newlines at either end, which are
// re-managed so that rerunning the reformatter cannot stack breaks.
func (f *reformatter) text() {
	i := strings.IndexByte(f.src[f.pos:], '<')
	if i < 0 {
		i = len(f.src) - f.pos
	}
	run := f.src[f.pos : f.pos+i]
	f.pos += i
	if run == "" {
		return
	}
	trimmed := strings.Trim(run, "\n")
	f.out.WriteString(trimmed)
	f.breakLine()
}

func (f *reformatter) tag() {
	rest := f.src[f.pos:]
	switch {
	case strings.HasPrefix(rest, "</"):
		// Closing tag: past > and break. In HTML mode this is the same
		// outcome as the leaf branch of the structural check.
		f.emit(f.tagEnd(f.pos))
		f.breakLine()
	case strings.HasPrefix(rest, "<!") || strings.HasPrefix(rest, "<?"):
		f.emit(f.tagEnd(f.pos))
		f.breakLine()
	default:
		f.openTag()
	}
}

func (f *reformatter) openTag() {
	openEnd := f.tagEnd(f.pos)
	open := f.src[f.pos:openEnd]

	if strings.HasSuffix(open, "/>") || (!f.xml && voidTagOpen(open)) {
		f.emit(openEnd)
		f.breakLine()
		return
	}

	if f.hasChildren(openEnd) {
		// Descend one level: break after the opening tag and let the
		// main loop handle the children.
		f.emit(openEnd)
		f.breakLine()
		return
	}

	// Leaf: the whole element, through its closing tag, on one line.
	f.emit(f.closeEnd(openEnd))
	f.breakLine()
}

// hasChildren reports whether the element whose opening tag ends at from
// contains nested elements: the next tag after any inline text is an
// opening tag rather than the element's own closing tag.
func (f *reformatter) hasChildren(from int) bool {
	i := strings.IndexByte(f.src[from:], '<')
	if i < 0 {
		return false
	}
	return !strings.HasPrefix(f.src[from+i:], "</")
}

// closeEnd finds the end of a leaf element: the first closing tag after
// from. Leaves have no nested elements, so no matching is needed.
func (f *reformatter) closeEnd(from int) int {
	i := strings.Index(f.src[from:], "</")
	if i < 0 {
		return len(f.src)
	}
	return f.tagEnd(from + i)
}

// tagEnd scans past the > closing the tag that starts at i, ignoring
// any > inside quoted attribute values.
func (f *reformatter) tagEnd(i int) int {
	var quote byte
	for ; i < len(f.src); i++ {
		c := f.src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i + 1
		}
	}
	return len(f.src)
}

func (f *reformatter) emit(end int) {
	f.out.WriteString(f.src[f.pos:end])
	f.pos = end
}

// breakLine ends the current output line, unless it is already ended or
// nothing has been written yet.
func (f *reformatter) breakLine() {
	if n := f.out.Len(); n > 0 && f.out.String()[n-1] != '\n' {
		f.out.WriteByte('\n')
	}
}

// voidTagOpen reports whether open (an opening tag, brackets included)
// names an HTML empty element written without the self-closing slash.
func voidTagOpen(open string) bool {
	name := open[1:]
	if i := strings.IndexAny(name, " \t\n>/"); i >= 0 {
		name = name[:i]
	}
	_, ok := voidTags[name]
	return ok
}
