// Package selhtml compiles a selector-flavored markup language to HTML.
//
// The language describes an HTML tree with CSS-selector syntax: a statement
// is a chain of selectors (each selector nests inside the previous one),
// quoted strings become text nodes, `;` ends a statement, and `{ ... }`
// groups statements under the element that opened the block:
//
//	html[lang=en]{head title "Hello World"; body{h1 "Hi!"; p "Text.";}}
//
// Rendering always produces a complete document: missing <html>, <head> and
// <body> elements are synthesized, along with charset/compat/viewport metas
// and a default <title>.
//
// The package is purely computational: no I/O, no shared state between
// calls. Parse and Render may be used concurrently on independent inputs.
package selhtml

// Compile parses source and renders it to an HTML document string in one
// step. The name is used in error messages only.
func Compile(source, name string) (string, error) {
	doc, err := Parse(source, name)
	if err != nil {
		return "", err
	}
	return Render(doc)
}
