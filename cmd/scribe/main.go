// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sahilm/fuzzy"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/scribe"
	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/search"
)

func main() {
	rootFlag := &cli.StringFlag{
		Name:    "root",
		Aliases: []string{"r"},
		Usage:   "Path to the workspace directory",
		Value:   ".",
	}

	app := &cli.App{
		Name:  "scribe",
		Usage: "Markdown content manager with fuzzy search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Scaffold a new workspace directory layout",
				Action: initCommand,
				Flags:  []cli.Flag{rootFlag},
			},
			{
				Name:   "new",
				Usage:  "Create a new document",
				Action: newCommand,
				Flags: []cli.Flag{
					rootFlag,
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Document type (page, plan, pattern, spec, knowledge)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Document title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Document category",
					},
					&cli.StringSliceFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Document keyword (repeatable)",
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "Document body (read from stdin if omitted)",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List documents of a given type",
				Action: listCommand,
				Flags: []cli.Flag{
					rootFlag,
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Document type (page, plan, pattern, spec, knowledge)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "Fuzzy-filter listed documents by title",
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Print a single document",
				ArgsUsage: "<id>",
				Action:    showCommand,
				Flags: []cli.Flag{
					rootFlag,
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Document type (page, plan, pattern, spec, knowledge)",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank documents against a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					rootFlag,
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Document type (page, plan, pattern, spec, knowledge)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "Only rank documents in this category",
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum score for a result to be included",
						Value: search.DefaultMinScore,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum number of results to return",
						Value: search.DefaultMaxResults,
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract knowledge entries from a session transcript",
				ArgsUsage: "<transcript file>",
				Action:    extractCommand,
				Flags:     []cli.Flag{rootFlag},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func initCommand(c *cli.Context) error {
	root := c.String("root")
	if err := scribe.Init(root); err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Initialized workspace at %s\n", root)
	return nil
}

func newCommand(c *cli.Context) error {
	ctx := context.Background()

	docType, err := core.ParseDocType(c.String("type"))
	if err != nil {
		return err
	}

	content := c.String("content")
	if content == "" {
		// Read the body from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read content from stdin: %w", err)
		}
		content = string(data)
	}

	ws, err := scribe.Open(c.String("root"))
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	doc, err := ws.Store().CreateDocument(ctx, &core.Document{
		Title:    c.String("title"),
		Content:  content,
		Category: c.String("category"),
		Keywords: c.StringSlice("keyword"),
		File:     core.FileRef{Type: docType},
	})
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	fmt.Printf("Created %s %d: %s\n", doc.File.Type, int(doc.Id), doc.File.Path)
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	docType, err := core.ParseDocType(c.String("type"))
	if err != nil {
		return err
	}

	ws, err := scribe.Open(c.String("root"))
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	docs, err := ws.Store().ListDocuments(ctx, docType)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if filter := c.String("filter"); filter != "" {
		docs = filterByTitle(docs, filter)
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", int(doc.Id)),
			doc.Title,
			doc.Category,
			doc.LastUpdated.Format("2006-01-02"),
		})
	}
	renderTable(os.Stdout, []string{"ID", "Title", "Category", "Updated"}, rows)
	return nil
}

func showCommand(c *cli.Context) error {
	ctx := context.Background()

	docType, err := core.ParseDocType(c.String("type"))
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return fmt.Errorf("document id must be an integer: %w", err)
	}

	ws, err := scribe.Open(c.String("root"))
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	doc, err := ws.Store().GetDocument(ctx, docType, core.ID(id))
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	fmt.Print(doc.Content)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(c.Args().First())
	if query == "" {
		return search.ErrEmptyQuery
	}

	docType, err := core.ParseDocType(c.String("type"))
	if err != nil {
		return err
	}

	ws, err := scribe.Open(c.String("root"))
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	opts := []search.Option{
		search.WithMinScore(c.Float64("min-score")),
		search.WithMaxResults(c.Int("max-results")),
	}
	if category := c.String("category"); category != "" {
		opts = append(opts, search.WithCategoryFilter(category))
	}

	results, err := ws.Search(ctx, query, docType, opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			fmt.Sprintf("%d", int(result.Document.Id)),
			fmt.Sprintf("%.2f", result.Score.Final),
			result.Document.Title,
			strings.Join(result.MatchedFields, ","),
			firstHighlight(result.Highlights),
		})
	}
	renderTable(os.Stdout, []string{"ID", "Score", "Title", "Matched", "Highlight"}, rows)
	return nil
}

func extractCommand(c *cli.Context) error {
	ctx := context.Background()

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("transcript file is required")
	}

	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open transcript: %w", err)
		}
		defer f.Close()
		reader = f
	}

	ws, err := scribe.Open(c.String("root"))
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	extractor, err := ws.NewExtractor()
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	entries, err := extractor.Extract(reader)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	created, err := extractor.SaveEntries(ctx, ws.Store(), entries)
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saved %d knowledge entries\n", len(created))
	return nil
}

// filterByTitle keeps the documents whose titles fuzzy-match pattern,
// ordered by match quality.
func filterByTitle(docs []*core.Document, pattern string) []*core.Document {
	titles := make([]string, len(docs))
	for i, doc := range docs {
		titles[i] = doc.Title
	}

	matches := fuzzy.Find(pattern, titles)
	filtered := make([]*core.Document, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, docs[m.Index])
	}
	return filtered
}

func firstHighlight(highlights []string) string {
	if len(highlights) == 0 {
		return ""
	}
	return highlights[0]
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
