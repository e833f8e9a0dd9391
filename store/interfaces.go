package store

import (
	"context"

	"github.com/poiesic/scribe/core"
)

// DocumentStore provides read and create operations over one workspace of
// document collections. Implementations must be safe for concurrent use.
type DocumentStore interface {
	// ListDocuments re-reads every document of one collection from the
	// backing medium. The returned documents are point-in-time snapshots,
	// already deduplicated, in no particular order.
	ListDocuments(ctx context.Context, docType core.DocType) ([]*core.Document, error)

	// GetDocument retrieves a single document by collection and ID.
	// Returns ErrNotFound if no document carries the ID.
	GetDocument(ctx context.Context, docType core.DocType, id core.ID) (*core.Document, error)

	// CreateDocument persists a new document in the collection given by
	// doc.File.Type. A zero Id is replaced with the next free ID in the
	// collection; a non-zero Id must not collide (ErrDuplicateID).
	// Returns the document with Id, File.Path, and LastUpdated populated.
	CreateDocument(ctx context.Context, doc *core.Document) (*core.Document, error)

	// Close releases resources held by the store.
	Close() error
}
