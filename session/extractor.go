package session

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/store"
)

// maxLineBytes bounds a single transcript line; longer lines abort the scan.
const maxLineBytes = 1 << 20

// Entry is one markdown section extracted from a transcript.
type Entry struct {
	Title   string
	Content string
}

// message is the wire shape of one transcript line.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Extractor pulls knowledge entries out of session transcripts.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewExtractor creates a new transcript extractor.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Extract reads a JSON-lines transcript and returns the deduplicated
// markdown sections found in assistant messages, in encounter order.
// Lines that fail to decode are skipped.
func (e *Extractor) Extract(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	seen := make(map[uint64]bool)
	var entries []Entry

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var msg message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			e.logger.Debug("skipping malformed transcript line", "line", lineNo, "err", err)
			continue
		}
		if msg.Role != "assistant" {
			continue
		}

		for _, entry := range splitSections(msg.Content) {
			fp := fingerprint(entry.Content)
			if seen[fp] {
				continue
			}
			seen[fp] = true
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// SaveEntries persists entries as knowledge documents.
// Returns the created documents; stops on the first store error.
func (e *Extractor) SaveEntries(ctx context.Context, docStore store.DocumentStore, entries []Entry) ([]*core.Document, error) {
	created := make([]*core.Document, 0, len(entries))

	for _, entry := range entries {
		doc, err := docStore.CreateDocument(ctx, &core.Document{
			Title:    entry.Title,
			Content:  entry.Content,
			Category: "session",
			File:     core.FileRef{Type: core.DocTypeKnowledge},
		})
		if err != nil {
			return created, err
		}
		e.logger.Info("saved session entry", "id", int(doc.Id), "title", doc.Title)
		created = append(created, doc)
	}

	return created, nil
}

// splitSections cuts a message into heading-delimited markdown sections.
// Text before the first heading and sections with empty bodies are dropped.
func splitSections(text string) []Entry {
	var (
		sections []Entry
		title    string
		body     []string
	)

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if title != "" && content != "" {
			sections = append(sections, Entry{
				Title:   title,
				Content: "# " + title + "\n\n" + content + "\n",
			})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			flush()
			title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			continue
		}
		if title != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// fingerprint hashes normalized section content for deduplication.
func fingerprint(text string) uint64 {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")

	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(normalized))
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}
