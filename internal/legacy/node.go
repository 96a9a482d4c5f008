package legacy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// ErrMissingField is returned when an expected element or attribute is absent.
var ErrMissingField = errors.New("missing field")

// Node is a read-only view over a single XML element.
type Node struct {
	el *etree.Element
}

// Wrap returns a Node for el, or nil when el is nil.
func Wrap(el *etree.Element) *Node {
	if el == nil {
		return nil
	}

	return &Node{el: el}
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading xml document: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.New("xml document has no root element")
	}

	return Wrap(root), nil
}

// ParseString reads an XML document held in s and returns its root element.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Name returns the local name of the element.
func (n *Node) Name() string {
	return n.el.Tag
}

// NamespaceURI returns the namespace URI the element belongs to, resolving
// prefixes and default namespaces declared on ancestors.
func (n *Node) NamespaceURI() string {
	return n.el.NamespaceURI()
}

// SelectSingleNode returns the first element matching path, or nil.
func (n *Node) SelectSingleNode(path string) *Node {
	return Wrap(n.el.FindElement(path))
}

// SelectNodes returns all elements matching path in document order.
func (n *Node) SelectNodes(path string) []*Node {
	return wrapAll(n.el.FindElements(path))
}

// Children returns the direct child elements.
func (n *Node) Children() []*Node {
	return wrapAll(n.el.ChildElements())
}

// Child returns the first direct child element with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.el.ChildElements() {
		if c.Tag == name {
			return Wrap(c)
		}
	}

	return nil
}

// ChildrenNamed returns the direct child elements with the given local name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node

	for _, c := range n.el.ChildElements() {
		if c.Tag == name {
			out = append(out, Wrap(c))
		}
	}

	return out
}

// Descendants returns the element itself and all of its descendants whose
// local name is name and whose namespace URI is space, in document order.
func (n *Node) Descendants(space, name string) []*Node {
	var out []*Node

	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		if e.Tag == name && e.NamespaceURI() == space {
			out = append(out, Wrap(e))
		}

		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(n.el)

	return out
}

// Text returns the concatenated character data directly under the element.
func (n *Node) Text() string {
	var sb strings.Builder

	for _, tok := range n.el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}

	return sb.String()
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	a := n.el.SelectAttr(name)
	if a == nil {
		return "", false
	}

	return a.Value, true
}

// AsXML serializes the element and its subtree.
func (n *Node) AsXML() string {
	doc := etree.NewDocument()
	doc.SetRoot(n.el.Copy())

	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}

	return s
}

// TextAt returns the text of the first element matching path.
// It fails with ErrMissingField when no element matches.
func (n *Node) TextAt(path string) (string, error) {
	found := n.SelectSingleNode(path)
	if found == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, path)
	}

	return found.Text(), nil
}

// OptionalTextAt returns the text of the first element matching path, or
// the empty string when no element matches.
func (n *Node) OptionalTextAt(path string) string {
	found := n.SelectSingleNode(path)
	if found == nil {
		return ""
	}

	return found.Text()
}

// RequireAttr returns the value of the named attribute.
// It fails with ErrMissingField when the attribute is absent.
func (n *Node) RequireAttr(name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: @%s on <%s>", ErrMissingField, name, n.Name())
	}

	return v, nil
}

func wrapAll(els []*etree.Element) []*Node {
	if len(els) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(els))
	for _, el := range els {
		out = append(out, Wrap(el))
	}

	return out
}
