// Package dom defines the document tree that validation rules read.
//
// Rules only see the Document and Element interfaces, so the HTML library
// behind them can be swapped without touching any rule.
package dom

// Parser turns learner-supplied markup into a Document.
// Parse never fails: malformed input yields a best-effort (possibly empty) tree.
type Parser interface {
	Parse(src string) Document
}

// Document is a parsed, read-only document tree.
type Document interface {
	// All returns every element with the given tag name, in document order.
	All(tag string) []Element

	// ByID returns the first element whose id attribute equals id.
	ByID(id string) (Element, bool)

	// First returns the first element matching a CSS selector.
	// An invalid selector matches nothing.
	First(selector string) (Element, bool)

	// Select returns all elements matching a CSS selector.
	Select(selector string) []Element

	// Root returns the document element (<html>).
	Root() (Element, bool)

	// BodyText returns the rendered text of <body>, excluding scripts and styles.
	BodyText() string

	// BodyHTML returns the serialized markup inside <body>.
	BodyHTML() string
}

// Element is a single element node.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string

	// Attr returns the value of an attribute and whether it is present.
	Attr(name string) (string, bool)

	// Text returns the text content of the element and its descendants.
	Text() string

	// Style returns the value of an inline style property, or "" if unset.
	Style(property string) string

	// HTML returns the serialized markup inside the element.
	HTML() string
}
