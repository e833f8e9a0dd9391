package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/store"
	"gopkg.in/yaml.v3"
)

const frontMatterFence = "---"

// frontMatter is the optional YAML metadata block at the top of a file.
type frontMatter struct {
	Category string   `yaml:"category,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// parseDocument builds a Document from raw file bytes.
// The stored Content is the body with the front matter block stripped.
func parseDocument(docType core.DocType, relPath, name string, data []byte, modTime time.Time) (*core.Document, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrBadFrontMatter, relPath, err)
	}

	title := firstHeading(body)
	if title == "" {
		title = core.UntitledTitle
	}

	return &core.Document{
		Id:          parseFilenameID(name),
		Title:       title,
		Content:     body,
		Category:    meta.Category,
		Keywords:    meta.Keywords,
		LastUpdated: modTime,
		File:        core.FileRef{Type: docType, Path: relPath},
	}, nil
}

// splitFrontMatter separates the YAML front matter block from the body.
// Files without a leading fence have no metadata and keep their full text.
func splitFrontMatter(data []byte) (frontMatter, string, error) {
	var meta frontMatter

	text := string(data)
	if !strings.HasPrefix(text, frontMatterFence+"\n") {
		return meta, text, nil
	}

	rest := text[len(frontMatterFence)+1:]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return meta, "", fmt.Errorf("unterminated front matter")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, "", err
	}

	body := rest[end+len(frontMatterFence)+1:]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "\n")
	return meta, body, nil
}

// firstHeading returns the text of the first markdown heading line.
func firstHeading(body string) string {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

// renderDocument serializes a document to file bytes: an optional front
// matter block followed by the body, with a title heading prepended when
// the body has none.
func renderDocument(doc *core.Document) ([]byte, error) {
	var buf bytes.Buffer

	if doc.Category != "" || len(doc.Keywords) > 0 {
		meta, err := yaml.Marshal(frontMatter{Category: doc.Category, Keywords: doc.Keywords})
		if err != nil {
			return nil, err
		}
		buf.WriteString(frontMatterFence + "\n")
		buf.Write(meta)
		buf.WriteString(frontMatterFence + "\n\n")
	}

	body := strings.TrimSpace(doc.Content)
	if firstHeading(body) == "" {
		buf.WriteString("# " + doc.Title + "\n")
		if body != "" {
			buf.WriteString("\n")
		}
	}
	if body != "" {
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
