package core

import "time"

// ID is the numeric identifier of a document within one collection.
// It is parsed from the filename prefix ("007-title.md" -> 7) and is 0
// for legacy files that carry no prefix. IDs are unique per collection,
// not across collections.
type ID int

// DocType identifies which collection a document belongs to.
// It is consumed by the store and the CLI presentation layer only; the
// search engine treats every collection identically.
type DocType int

const (
	// DocTypePage is a free-form documentation page.
	DocTypePage DocType = iota + 1
	// DocTypePlan is an implementation plan.
	DocTypePlan
	// DocTypePattern is a reusable code or design pattern.
	DocTypePattern
	// DocTypeSpec is a feature or system specification.
	DocTypeSpec
	// DocTypeKnowledge is a captured knowledge entry.
	DocTypeKnowledge
)

// String returns the singular name of the document type.
func (t DocType) String() string {
	switch t {
	case DocTypePage:
		return "page"
	case DocTypePlan:
		return "plan"
	case DocTypePattern:
		return "pattern"
	case DocTypeSpec:
		return "spec"
	case DocTypeKnowledge:
		return "knowledge"
	default:
		return "unknown"
	}
}

// DocTypes lists all known document types in display order.
func DocTypes() []DocType {
	return []DocType{DocTypePage, DocTypePlan, DocTypePattern, DocTypeSpec, DocTypeKnowledge}
}

// ParseDocType maps a singular type name to its DocType.
// Returns ErrInvalidDocType for unknown names.
func ParseDocType(name string) (DocType, error) {
	for _, t := range DocTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, ErrInvalidDocType
}

// UntitledTitle is the sentinel title for documents without a heading.
const UntitledTitle = "Untitled"

// FileRef is an opaque handle identifying the backing file of a document
// within its collection. Callers use it to resolve a search result back
// to a file on disk.
type FileRef struct {
	Type DocType
	Path string
}

// Document is one markdown-backed record in a collection.
// Documents are immutable snapshots: the store re-reads files on every
// listing, so a Document is only valid for the call that produced it.
type Document struct {
	Id          ID
	Title       string    // First heading line, or UntitledTitle
	Content     string    // Full raw text of the document body
	Category    string    // Optional grouping; empty means absent
	Keywords    []string  // Optional declared metadata; nil means absent
	LastUpdated time.Time // Modification time of the backing file
	File        FileRef
}

// SearchScore breaks down how a document scored against a query.
// Sub-scores are each roughly in [0,1] before weighting; Final is the
// weighted combination capped at 1.0.
type SearchScore struct {
	ExactMatch       float64
	Semantic         float64
	KeywordRelevance float64
	CategoryBoost    float64
	Recency          float64
	FieldBoost       float64
	Final            float64
}

// SearchResult pairs a document with its score and presentation hints.
type SearchResult struct {
	Document      *Document
	Score         SearchScore
	MatchedFields []string // Fields whose text contains the query substring
	Highlights    []string // Human-readable highlight snippets
}
