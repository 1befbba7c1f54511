package selhtml

import "strings"

// Normalize completes a parsed document into a well-formed HTML shape without
// touching the caller's tree: the document is deep-copied first. It returns
// the guaranteed <html> element of the copy; its parent is the copied
// document root. Normalization is idempotent.
//
// The guarantees are:
//   - a single <html> element directly under the root;
//   - a <head> with charset/X-UA-Compatible/viewport metas and a <title>;
//   - a <body> holding every root-level statement that is not html, head or
//     body itself.
func Normalize(doc *Node) *Node {
	return normalizeTree(doc.clone())
}

func normalizeTree(doc *Node) *Node {
	root := directChild(doc, "html")
	if root == nil {
		root = newElement("html")
		doc.AppendChild(root)
		// An authored head or body at the top level belongs to the fresh
		// html element, not to the body we are about to fill.
		for _, tag := range []string{"head", "body"} {
			if n := directChild(doc, tag); n != nil {
				doc.RemoveChild(n)
				root.AppendChild(n)
			}
		}
	}

	head := root.findElement("head")
	if head == nil {
		head = newElement("head")
		root.InsertBefore(head, root.FirstChild)
	}
	ensureMetadata(head)

	body := root.findElement("body")
	if body == nil {
		body = newElement("body")
		root.AppendChild(body)
	}

	var strays []*Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c == root {
			continue
		}
		if c.Type == ElementNode && (c.Data == "html" || c.Data == "head" || c.Data == "body") {
			continue
		}
		strays = append(strays, c)
	}
	for _, n := range strays {
		doc.RemoveChild(n)
		body.AppendChild(n)
	}
	return root
}

// directChild returns the first direct element child of n with the given tag.
// Root-level lookups do not see through blocks: a block at the top level is
// an ordinary statement that ends up in the body.
func directChild(n *Node, tag string) *Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// ensureMetadata inserts the bootstrap metadata missing from head, as a group
// before any authored content, in the conventional order: charset meta,
// X-UA-Compatible meta, viewport meta, title.
func ensureMetadata(head *Node) {
	hasCharset, hasCompat, hasViewport, hasTitle := false, false, false, false
	head.elements(func(c *Node) bool {
		switch c.Data {
		case "meta":
			if _, ok := c.attrVal("charset"); ok {
				hasCharset = true
			}
			if v, ok := c.attrVal("http-equiv"); ok && strings.EqualFold(v, "X-UA-Compatible") {
				hasCompat = true
			}
			if v, ok := c.attrVal("name"); ok && v == "viewport" {
				hasViewport = true
			}
		case "title":
			hasTitle = true
		}
		return true
	})

	var missing []*Node
	if !hasCharset {
		missing = append(missing, newElement("meta", Attribute{Key: "charset", Val: "UTF-8"}))
	}
	if !hasCompat {
		missing = append(missing, newElement("meta",
			Attribute{Key: "content", Val: "IE=edge"},
			Attribute{Key: "http-equiv", Val: "X-UA-Compatible"},
		))
	}
	if !hasViewport {
		missing = append(missing, newElement("meta",
			Attribute{Key: "content", Val: "width=device-width, initial-scale=1.0"},
			Attribute{Key: "name", Val: "viewport"},
		))
	}
	if !hasTitle {
		title := newElement("title")
		title.AppendChild(newText("Untitled"))
		missing = append(missing, title)
	}

	anchor := head.FirstChild
	for _, n := range missing {
		head.InsertBefore(n, anchor)
	}
}

func newElement(tag string, attrs ...Attribute) *Node {
	return &Node{Type: ElementNode, Data: tag, Attr: attrs}
}

func newText(s string) *Node {
	return &Node{Type: TextNode, Data: s}
}
