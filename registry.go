package pphtml

import (
	"sort"
	"sync"
)

// standardTags is the fixed HTML5 tag set. Tags outside this set render
// only when allow-listed on a TagRegistry.
var standardTags = tagSet(
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "base", "bdi", "bdo", "blockquote", "body", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div",
	"dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup",
	"hr", "html",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li", "link",
	"main", "map", "mark", "menu", "meta", "meter",
	"nav", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "pre", "progress",
	"q",
	"rp", "rt", "ruby",
	"s", "samp", "script", "section", "select", "slot", "small",
	"source", "span", "strong", "style", "sub", "summary", "sup",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th",
	"thead", "time", "title", "tr", "track",
	"u", "ul",
	"var", "video",
	"wbr",
)

// voidTags are empty elements: they never take children and always
// self-close in HTML mode.
var voidTags = tagSet(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

func tagSet(tags ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// TagRegistry is the allowed-tag registry: the fixed standard HTML5 set
// plus a mutable extension allow-list. A registry may be shared by
// concurrent renders; extension access is guarded.
type TagRegistry struct {
	mu  sync.RWMutex
	ext map[string]struct{}
}

// DefaultRegistry is the registry used when no option overrides it. It
// starts with no extensions.
var DefaultRegistry = NewTagRegistry()

// NewTagRegistry creates a registry with the given extension tags
// allowed beyond the standard HTML5 set.
func NewTagRegistry(extensions ...string) *TagRegistry {
	r := &TagRegistry{ext: make(map[string]struct{}, len(extensions))}
	r.Allow(extensions...)
	return r
}

// Allow adds tags to the extension allow-list.
func (r *TagRegistry) Allow(tags ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tags {
		r.ext[t] = struct{}{}
	}
}

// Valid reports whether tag is renderable: standard or allow-listed.
func (r *TagRegistry) Valid(tag string) bool {
	if _, ok := standardTags[tag]; ok {
		return true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ext[tag]
	return ok
}

// Void reports whether tag is an empty element (self-closing, no
// children). Extensions are never void.
func (r *TagRegistry) Void(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// Extensions returns the allow-listed tags in sorted order.
func (r *TagRegistry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ext))
	for t := range r.ext {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
