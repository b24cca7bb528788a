package htmlprocessor

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// domDocument implements Document interface using golang.org/x/net/html DOM parsing.
type domDocument struct {
	root *html.Node
}

// ParseEditScreen parses HTML bytes into a Document using DOM parsing.
func ParseEditScreen(htmlBytes []byte) (Document, error) {
	root, err := html.Parse(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, err
	}
	return &domDocument{root: root}, nil
}

// findFirst returns the first element in document order for which match is true.
func findFirst(node *html.Node, match func(*html.Node) bool) *html.Node {
	if node == nil {
		return nil
	}
	if node.Type == html.ElementNode && match(node) {
		return node
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findElementByID searches for the element whose id attribute equals id.
func findElementByID(root *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return findFirst(root, func(n *html.Node) bool {
		return getAttr(n, "id") == id
	})
}

// findField searches for an <input> or <textarea> with the given name attribute.
func findField(root *html.Node, name string) *html.Node {
	if name == "" {
		return nil
	}
	return findFirst(root, func(n *html.Node) bool {
		tag := strings.ToLower(n.Data)
		return (tag == "input" || tag == "textarea") && getAttr(n, "name") == name
	})
}

// getAttr returns attribute value for given name (case-insensitive comparison).
// Returns empty string if not found.
func getAttr(node *html.Node, name string) string {
	if node == nil {
		return ""
	}
	name = strings.ToLower(name)
	for _, attr := range node.Attr {
		if strings.ToLower(attr.Key) == name {
			return attr.Val
		}
	}
	return ""
}

// setAttr sets or adds the attribute on node.
func setAttr(node *html.Node, name, value string) {
	lower := strings.ToLower(name)
	for i := range node.Attr {
		if strings.ToLower(node.Attr[i].Key) == lower {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: lower, Val: value})
}

// getTextContent recursively extracts all text content from node and descendants.
func getTextContent(node *html.Node) string {
	if node == nil {
		return ""
	}

	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(node)
	return sb.String()
}

// replaceChildren drops all children of node and appends a single text node.
func replaceChildren(node *html.Node, text string) {
	for c := node.FirstChild; c != nil; {
		next := c.NextSibling
		node.RemoveChild(c)
		c = next
	}
	if text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (d *domDocument) ElementText(id string) string {
	return getTextContent(findElementByID(d.root, id))
}

func (d *domDocument) SetElementText(id, text string) bool {
	elem := findElementByID(d.root, id)
	if elem == nil {
		return false
	}
	replaceChildren(elem, text)
	return true
}

func (d *domDocument) FieldValue(name string) string {
	field := findField(d.root, name)
	if field == nil {
		return ""
	}
	if strings.ToLower(field.Data) == "textarea" {
		return strings.TrimSpace(getTextContent(field))
	}
	return strings.TrimSpace(getAttr(field, "value"))
}

func (d *domDocument) SetFieldValue(name, value string) bool {
	field := findField(d.root, name)
	if field == nil {
		return false
	}
	if strings.ToLower(field.Data) == "textarea" {
		replaceChildren(field, value)
	} else {
		setAttr(field, "value", value)
	}
	return true
}

func (d *domDocument) SetPlaceholder(name, text string) bool {
	field := findField(d.root, name)
	if field == nil {
		return false
	}
	setAttr(field, "placeholder", text)
	return true
}

func (d *domDocument) HTML() []byte {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return nil
	}
	return buf.Bytes()
}
