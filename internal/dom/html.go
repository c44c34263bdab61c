package dom

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser implements Parser with golang.org/x/net/html, which applies the
// HTML5 error-recovery rules a browser would.
type HTMLParser struct{}

var _ Parser = HTMLParser{}

// Parse parses src as a full HTML document. Fragments are wrapped in the
// implied <html>, <head> and <body> elements.
func (HTMLParser) Parse(src string) Document {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return &document{root: root}
}

// ValidSelector reports whether sel compiles as a CSS selector.
func ValidSelector(sel string) error {
	_, err := cascadia.Compile(sel)
	return err
}

type document struct {
	root *html.Node
}

func (d *document) All(tag string) []Element {
	tag = strings.ToLower(tag)
	var out []Element
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, &element{node: n})
		}
	})
	return out
}

func (d *document) ByID(id string) (Element, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		if v, ok := attr(n, "id"); ok && v == id {
			found = n
		}
	})
	if found == nil {
		return nil, false
	}
	return &element{node: found}, true
}

func (d *document) First(selector string) (Element, bool) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false
	}
	n := sel.MatchFirst(d.root)
	if n == nil {
		return nil, false
	}
	return &element{node: n}, true
}

func (d *document) Select(selector string) []Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := sel.MatchAll(d.root)
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &element{node: n})
	}
	return out
}

func (d *document) Root() (Element, bool) {
	n := findElement(atom.Html, d.root)
	if n == nil {
		return nil, false
	}
	return &element{node: n}, true
}

func (d *document) BodyText() string {
	body := findElement(atom.Body, d.root)
	if body == nil {
		return ""
	}
	return textOf(body)
}

func (d *document) BodyHTML() string {
	body := findElement(atom.Body, d.root)
	if body == nil {
		return ""
	}
	return innerHTML(body)
}

type element struct {
	node *html.Node
}

func (e *element) Tag() string { return e.node.Data }

func (e *element) Attr(name string) (string, bool) {
	return attr(e.node, strings.ToLower(name))
}

func (e *element) Text() string { return textOf(e.node) }

func (e *element) Style(property string) string {
	decl, ok := attr(e.node, "style")
	if !ok {
		return ""
	}
	// douceur drops the last value unless it is terminated, and rejects
	// runs of empty declarations at the end.
	decl = strings.TrimRight(strings.TrimSpace(decl), "; \t\r\n")
	if decl == "" {
		return ""
	}
	property = strings.ToLower(strings.TrimSpace(property))

	decls, err := parser.ParseDeclarations(decl + ";")
	if err != nil {
		return scanDeclarations(decl, property)
	}
	value := ""
	// Later declarations win, as in the cascade.
	for _, d := range decls {
		if strings.ToLower(d.Property) == property {
			value = d.Value
		}
	}
	return value
}

// scanDeclarations reads property from a style attribute douceur rejected,
// splitting on ";" and the first ":" the way a lenient browser would.
func scanDeclarations(decl, property string) string {
	value := ""
	for _, part := range strings.Split(decl, ";") {
		name, v, ok := strings.Cut(part, ":")
		if !ok || strings.ToLower(strings.TrimSpace(name)) != property {
			continue
		}
		v = strings.TrimSpace(v)
		if i := strings.LastIndex(strings.ToLower(v), "!important"); i >= 0 {
			v = strings.TrimSpace(v[:i])
		}
		value = v
	}
	return value
}

func (e *element) HTML() string { return innerHTML(e.node) }

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch, visit)
	}
}

func findElement(a atom.Atom, n *html.Node) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found == nil && c.Type == html.ElementNode && c.DataAtom == a {
			found = c
		}
	})
	return found
}

// textOf approximates innerText: script and style contents are skipped and
// block-level elements are separated by line breaks.
func textOf(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
			return
		case html.ElementNode:
			switch c.DataAtom {
			case atom.Script, atom.Style, atom.Template, atom.Noscript:
				return
			case atom.Br:
				b.WriteByte('\n')
				return
			}
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			visit(ch)
		}
		if c.Type == html.ElementNode && isBlock(c.DataAtom) {
			b.WriteByte('\n')
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		visit(ch)
	}
	return b.String()
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := html.Render(&buf, ch); err != nil {
			break
		}
	}
	return buf.String()
}

var blockAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Tr: true, atom.Ul: true,
}

func isBlock(a atom.Atom) bool {
	return blockAtoms[a]
}
