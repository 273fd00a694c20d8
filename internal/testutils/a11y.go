// Package testutils holds helpers shared by the package tests.
//
// The a11y helpers query rendered markup the way assistive technology sees it:
// elements are found by ARIA role and accessible name, and subtrees that are
// hidden (the hidden attribute or aria-hidden="true") are skipped.
package testutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML parses a full document or a fragment rendered by a component.
func ParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err, "markup should parse")
	return doc
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func isHidden(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if _, ok := Attr(n, "hidden"); ok {
		return true
	}
	v, _ := Attr(n, "aria-hidden")
	return v == "true"
}

// Role returns the explicit role attribute or the implicit ARIA role of an element.
func Role(n *html.Node) string {
	if n.Type != html.ElementNode {
		return ""
	}
	if r, ok := Attr(n, "role"); ok {
		return r
	}
	switch n.DataAtom {
	case atom.Button:
		return "button"
	case atom.A:
		if _, ok := Attr(n, "href"); ok {
			return "link"
		}
	case atom.Nav:
		return "navigation"
	case atom.Main:
		return "main"
	case atom.Footer:
		return "contentinfo"
	case atom.Header:
		return "banner"
	case atom.Form:
		return "form"
	case atom.Ul, atom.Ol:
		return "list"
	case atom.Li:
		return "listitem"
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return "heading"
	case atom.Img:
		return "img"
	case atom.Textarea:
		return "textbox"
	case atom.Input:
		t, _ := Attr(n, "type")
		switch t {
		case "", "text", "email", "tel":
			return "textbox"
		case "submit":
			return "button"
		}
	}
	return ""
}

// AccessibleName computes a simplified accessible name: aria-label, then alt,
// then the visible text content with whitespace collapsed.
func AccessibleName(n *html.Node) string {
	if v, ok := Attr(n, "aria-label"); ok {
		return v
	}
	if v, ok := Attr(n, "alt"); ok && n.DataAtom == atom.Img {
		return v
	}
	return strings.Join(strings.Fields(TextContent(n)), " ")
}

// TextContent concatenates the visible text below n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if isHidden(c) {
			return
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteString(" ")
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// HeadingLevel returns 1-6 for h1-h6 and 0 otherwise.
func HeadingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// QueryAllByRole returns every accessible element below root with the given role,
// in document order. An empty name matches any accessible name.
func QueryAllByRole(root *html.Node, role, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isHidden(n) {
			return
		}
		if Role(n) == role && (name == "" || AccessibleName(n) == name) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// GetByRole returns the single element matching role and name, failing the test
// when there are none or more than one.
func GetByRole(t *testing.T, root *html.Node, role, name string) *html.Node {
	t.Helper()
	found := QueryAllByRole(root, role, name)
	require.Len(t, found, 1, "expected exactly one %s named %q", role, name)
	return found[0]
}

// GetHeading returns the single heading of the given level (0 for any) and name.
func GetHeading(t *testing.T, root *html.Node, level int, name string) *html.Node {
	t.Helper()
	var found []*html.Node
	for _, n := range QueryAllByRole(root, "heading", name) {
		if level == 0 || HeadingLevel(n) == level {
			found = append(found, n)
		}
	}
	require.Len(t, found, 1, "expected exactly one h%d named %q", level, name)
	return found[0]
}

// Names maps elements to their accessible names.
func Names(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = AccessibleName(n)
	}
	return out
}

// ByID finds the element with the given id anywhere below root.
func ByID(root *html.Node, id string) *html.Node {
	if v, ok := Attr(root, "id"); ok && v == id {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := ByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
