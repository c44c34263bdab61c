package dom

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const outlineTextLimit = 32

// Outline renders the element structure of a document as an indented tree,
// the way an accessibility inspector would list it. Only documents produced
// by HTMLParser can be outlined; other implementations yield "".
func Outline(doc Document) string {
	d, ok := doc.(*document)
	if !ok {
		return ""
	}
	root := findElement(atom.Html, d.root)
	if root == nil {
		return ""
	}
	tree := treeprint.NewWithRoot(describe(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(t treeprint.Tree, n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			if hasElementOrText(ch) {
				addChildren(t.AddBranch(describe(ch)), ch)
			} else {
				t.AddNode(describe(ch))
			}
		case html.TextNode:
			text := strings.Join(strings.Fields(ch.Data), " ")
			if text == "" {
				continue
			}
			t.AddNode(fmt.Sprintf("%q", truncate(text, outlineTextLimit)))
		}
	}
}

func hasElementOrText(n *html.Node) bool {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return true
		}
		if ch.Type == html.TextNode && strings.TrimSpace(ch.Data) != "" {
			return true
		}
	}
	return false
}

// describe formats an element as <tag attr="value" ...>.
func describe(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteString(" ")
		b.WriteString(a.Key)
		if a.Val != "" {
			fmt.Fprintf(&b, "=%q", truncate(a.Val, outlineTextLimit))
		}
	}
	b.WriteString(">")
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
