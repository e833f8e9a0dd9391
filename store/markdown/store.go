package markdown

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/store"
)

// Store reads and writes markdown documents under a workspace root.
type Store struct {
	root   string
	pool   *ants.Pool
	logger *slog.Logger
}

var _ store.DocumentStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store) error

// WithPoolSize sets the worker pool size used to parse files during a
// listing. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Store) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore opens a markdown store rooted at an initialized workspace
// directory. See Init for scaffolding a new workspace.
func NewStore(root string, opts ...Option) (store.DocumentStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Store{
		root:   root,
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the parse worker pool.
func (s *Store) Close() error {
	s.pool.Release()
	return nil
}

// ListDocuments re-reads one collection from disk. Unreadable or
// malformed files are logged and skipped so one bad file never hides the
// rest of the collection. The snapshot is sorted by ID ascending (then
// path) and deduplicated on ID.
func (s *Store) ListDocuments(ctx context.Context, docType core.DocType) ([]*core.Document, error) {
	if err := core.ValidateDocType(docType); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.root, collectionDir(docType))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", store.ErrCollectionMissing, dir)
		}
		return nil, err
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		docs []*core.Document
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := entry.Name()
		wg.Add(1)
		task := func() {
			defer wg.Done()

			doc, err := s.loadDocument(docType, name)
			if err != nil {
				s.logger.Warn("skipping document", "path", filepath.Join(dir, name), "err", err)
				return
			}

			mu.Lock()
			docs = append(docs, doc)
			mu.Unlock()
		}

		if err := s.pool.Submit(task); err != nil {
			// Run inline if the pool is unavailable
			task()
		}
	}
	wg.Wait()

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Id != docs[j].Id {
			return docs[i].Id < docs[j].Id
		}
		return docs[i].File.Path < docs[j].File.Path
	})

	return s.dedupe(docs), nil
}

// GetDocument retrieves a single document by ID.
func (s *Store) GetDocument(ctx context.Context, docType core.DocType, id core.ID) (*core.Document, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d", store.ErrNotFound, id)
	}

	docs, err := s.ListDocuments(ctx, docType)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Id == id {
			return doc, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %d", store.ErrNotFound, docType, id)
}

// CreateDocument writes a new markdown file for doc in its collection.
// A zero ID is replaced with the next free ID; explicit IDs must be free.
func (s *Store) CreateDocument(ctx context.Context, doc *core.Document) (*core.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", core.ErrInvalidDocument)
	}
	if doc.Title == "" || doc.Title == core.UntitledTitle {
		if heading := firstHeading(doc.Content); heading != "" {
			doc.Title = heading
		}
	}

	existing, err := s.ListDocuments(ctx, doc.File.Type)
	if err != nil {
		return nil, err
	}

	id := doc.Id
	var maxID core.ID
	for _, d := range existing {
		if d.Id > maxID {
			maxID = d.Id
		}
		if id != 0 && d.Id == id {
			return nil, fmt.Errorf("%w: %s %d", store.ErrDuplicateID, doc.File.Type, id)
		}
	}
	if id == 0 {
		id = maxID + 1
	}

	created := *doc
	created.Id = id
	created.File.Path = filepath.Join(collectionDir(doc.File.Type), formatFilename(id, doc.Title))

	if err := core.ValidateDocument(&created); err != nil {
		return nil, err
	}

	data, err := renderDocument(&created)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.root, created.File.Path)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	created.LastUpdated = info.ModTime()

	// Re-parse so the caller sees exactly what a listing would return.
	parsed, err := parseDocument(created.File.Type, created.File.Path, filepath.Base(created.File.Path), data, created.LastUpdated)
	if err != nil {
		return nil, err
	}

	s.logger.Info("created document", "type", created.File.Type.String(), "id", int(created.Id), "path", created.File.Path)
	return parsed, nil
}

// loadDocument reads and parses one file of a collection.
func (s *Store) loadDocument(docType core.DocType, name string) (*core.Document, error) {
	relPath := filepath.Join(collectionDir(docType), name)
	fullPath := filepath.Join(s.root, relPath)

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}

	return parseDocument(docType, relPath, name, data, info.ModTime())
}

// dedupe drops later documents that repeat an earlier non-zero ID.
// docs must already be sorted by ID.
func (s *Store) dedupe(docs []*core.Document) []*core.Document {
	out := docs[:0]
	var lastID core.ID
	for _, doc := range docs {
		if doc.Id != 0 && doc.Id == lastID {
			s.logger.Warn("duplicate document id", "path", doc.File.Path, "id", int(doc.Id))
			continue
		}
		lastID = doc.Id
		out = append(out, doc)
	}
	return out
}

// Init scaffolds the workspace directory layout: one subdirectory per
// collection. Returns ErrWorkspaceExists if every collection directory is
// already present.
func Init(root string) error {
	allExist := true
	for _, docType := range core.DocTypes() {
		info, err := os.Stat(filepath.Join(root, collectionDir(docType)))
		if err != nil || !info.IsDir() {
			allExist = false
			break
		}
	}
	if allExist {
		return fmt.Errorf("%w: %s", store.ErrWorkspaceExists, root)
	}

	for _, docType := range core.DocTypes() {
		if err := os.MkdirAll(filepath.Join(root, collectionDir(docType)), 0755); err != nil {
			return err
		}
	}

	return nil
}
