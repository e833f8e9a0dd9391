package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/scribe/core"
)

// snippetRadius is the number of characters kept on each side of a content
// match when building a highlight.
const snippetRadius = 50

// annotate derives the matched-field list and highlight snippets for a
// result. Matched fields are strictly substring-based: a document that
// scored through fuzzy similarity alone reports no matched fields.
func annotate(query string, doc *core.Document) (fields, highlights []string) {
	q := strings.ToLower(strings.TrimSpace(query))

	if strings.Contains(strings.ToLower(doc.Title), q) {
		fields = append(fields, "title")
		highlights = append(highlights, fmt.Sprintf("Title: %q", doc.Title))
	}
	if strings.Contains(strings.ToLower(doc.Content), q) {
		fields = append(fields, "content")
	}
	if doc.Category != "" && strings.Contains(strings.ToLower(doc.Category), q) {
		fields = append(fields, "category")
	}

	if snippet, ok := contentSnippet(q, doc.Content); ok {
		highlights = append(highlights, snippet)
	}

	return fields, highlights
}

// contentSnippet extracts up to snippetRadius characters on each side of
// the first occurrence of the first query word found in the content.
func contentSnippet(query, content string) (string, bool) {
	lower := strings.ToLower(content)

	for _, word := range strings.Fields(query) {
		idx := strings.Index(lower, word)
		if idx < 0 {
			continue
		}

		start := idx - snippetRadius
		if start < 0 {
			start = 0
		}
		end := idx + len(word) + snippetRadius
		if end > len(content) {
			end = len(content)
		}

		snippet := strings.TrimSpace(content[start:end])
		snippet = strings.ReplaceAll(snippet, "\n", " ")

		var b strings.Builder
		b.WriteString("Content: \"")
		if start > 0 {
			b.WriteString("...")
		}
		b.WriteString(snippet)
		if end < len(content) {
			b.WriteString("...")
		}
		b.WriteString("\"")
		return b.String(), true
	}

	return "", false
}
