package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/scribe/core"
)

var (
	idPrefixPattern = regexp.MustCompile(`^(\d+)[-_]`)
	slugCleaner     = regexp.MustCompile(`[^a-z0-9]+`)
)

// collectionDir maps a document type to its workspace subdirectory.
func collectionDir(docType core.DocType) string {
	if docType == core.DocTypeKnowledge {
		return "knowledge"
	}
	return docType.String() + "s"
}

// parseFilenameID extracts the numeric ID prefix from a markdown filename.
// Returns 0 for unnumbered legacy files ("notes.md").
func parseFilenameID(name string) core.ID {
	base := strings.TrimSuffix(name, ".md")

	if m := idPrefixPattern.FindStringSubmatch(base); m != nil {
		id, err := strconv.Atoi(m[1])
		if err == nil && id > 0 {
			return core.ID(id)
		}
		return 0
	}

	// Bare numeric filenames ("7.md") also count as numbered.
	if id, err := strconv.Atoi(base); err == nil && id > 0 {
		return core.ID(id)
	}

	return 0
}

// slugify converts a title to a lowercase hyphenated filename fragment.
func slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug
}

// formatFilename builds the canonical "NNN-slug.md" filename.
func formatFilename(id core.ID, title string) string {
	return fmt.Sprintf("%03d-%s.md", id, slugify(title))
}
