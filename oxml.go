package slidetree

import (
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// XML namespace constants
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// nsPrefixes maps the conventional prefixes used in tag literals to their
// namespace URIs.
var nsPrefixes = map[string]string{
	"p": nsPresentationML,
	"a": nsDrawingML,
	"r": nsOfficeDocRels,
}

// qname is a namespace-qualified element name.
type qname struct {
	space string // namespace URI
	local string
}

// qn turns a prefixed tag literal such as "p:sp" into a qname.
func qn(tag string) qname {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return qname{local: tag}
	}
	return qname{space: nsPrefixes[prefix], local: local}
}

// qnameOf returns the qualified name of el. Elements whose prefix is not
// declared in scope (typically freshly created, detached ones) fall back to
// the conventional prefix mapping.
func qnameOf(el *etree.Element) qname {
	space := el.NamespaceURI()
	if space == "" {
		space = nsPrefixes[el.Space]
	}
	return qname{space: space, local: el.Tag}
}

func (q qname) matches(el *etree.Element) bool {
	return el != nil && el.Tag == q.local && qnameOf(el) == q
}

func (q qname) String() string {
	for prefix, uri := range nsPrefixes {
		if uri == q.space {
			return prefix + ":" + q.local
		}
	}
	return q.local
}

// isTag reports whether el matches any of the tag literals.
func isTag(el *etree.Element, tags ...string) bool {
	for _, tag := range tags {
		if qn(tag).matches(el) {
			return true
		}
	}
	return false
}

// firstChild returns the first child element of parent matching any of tags.
// A nil parent yields nil so lookups can be chained.
func firstChild(parent *etree.Element, tags ...string) *etree.Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.ChildElements() {
		if isTag(child, tags...) {
			return child
		}
	}
	return nil
}

// findPath descends through one child per tag, returning nil on the first miss.
func findPath(el *etree.Element, path ...string) *etree.Element {
	for _, tag := range path {
		el = firstChild(el, tag)
		if el == nil {
			return nil
		}
	}
	return el
}

// prefixFor finds the prefix bound to uri in the scope of el, preferring an
// in-scope declaration over the conventional one. An empty result with
// ok == true means uri is the default namespace.
func prefixFor(el *etree.Element, uri string) (prefix string, ok bool) {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Value != uri {
				continue
			}
			if a.Space == "xmlns" {
				return a.Key, true
			}
			if a.Space == "" && a.Key == "xmlns" {
				return "", true
			}
		}
	}
	return "", false
}

// newElement creates a detached element for tag using the prefix that parent
// has in scope for the tag's namespace.
func newElement(parent *etree.Element, tag string) *etree.Element {
	q := qn(tag)
	if q.space == "" {
		return etree.NewElement(q.local)
	}
	prefix, ok := prefixFor(parent, q.space)
	if !ok {
		prefix, _, _ = strings.Cut(tag, ":")
	}
	if prefix == "" {
		return etree.NewElement(q.local)
	}
	return etree.NewElement(prefix + ":" + q.local)
}

// insertBefore adds child to parent ahead of the first existing child that
// matches one of successors, or at the end when there is none.
func insertBefore(parent, child *etree.Element, successors ...string) *etree.Element {
	if next := firstChild(parent, successors...); next != nil {
		parent.InsertChildAt(next.Index(), child)
		return child
	}
	parent.AddChild(child)
	return child
}

// getOrAdd returns the first tag child of parent, creating it in schema
// position (ahead of successors) when missing.
func getOrAdd(parent *etree.Element, tag string, successors ...string) *etree.Element {
	if child := firstChild(parent, tag); child != nil {
		return child
	}
	return insertBefore(parent, newElement(parent, tag), successors...)
}

// removeAll removes every child of parent matching any of tags.
func removeAll(parent *etree.Element, tags ...string) {
	for _, child := range parent.ChildElements() {
		if isTag(child, tags...) {
			parent.RemoveChild(child)
		}
	}
}

// successorsOf returns the tags that follow tag in a schema child sequence.
func successorsOf(sequence []string, tag string) []string {
	i := slices.Index(sequence, tag)
	if i < 0 {
		return nil
	}
	return sequence[i+1:]
}

func attrValue(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

func attrString(el *etree.Element, key, dflt string) string {
	if v, ok := attrValue(el, key); ok {
		return v
	}
	return dflt
}

func attrInt(el *etree.Element, key string, dflt int) int {
	v, ok := attrValue(el, key)
	if !ok {
		return dflt
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return dflt
	}
	return n
}

func attrInt64(el *etree.Element, key string) (int64, bool) {
	v, ok := attrValue(el, key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func attrBool(el *etree.Element, key string) bool {
	v, _ := attrValue(el, key)
	return v == "1" || v == "true"
}

func setAttrInt64(el *etree.Element, key string, v int64) {
	el.CreateAttr(key, strconv.FormatInt(v, 10))
}
