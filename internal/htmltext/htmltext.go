// Package htmltext flattens the upstream's HTML terms-and-conditions blobs
// into plain text suitable for a terminal panel.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags start a new output line when encountered.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"br": true, "tr": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

// Extract strips tags from an HTML fragment, keeping text content with
// newlines at block boundaries. Script and style bodies are dropped. Input
// that fails to parse comes back unchanged; a terminal panel full of raw
// markup beats losing the terms entirely.
func Extract(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if blockTags[n.Data] {
				sb.WriteString("\n")
			}
		case html.TextNode:
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	lines := strings.Split(sb.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}
