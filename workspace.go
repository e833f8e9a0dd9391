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

package scribe

import (
	"context"
	"log/slog"

	"github.com/poiesic/scribe/core"
	"github.com/poiesic/scribe/search"
	"github.com/poiesic/scribe/session"
	"github.com/poiesic/scribe/store"
	"github.com/poiesic/scribe/store/markdown"
)

// Workspace ties a document store to the search engine over a
// directory of markdown content.
type Workspace struct {
	store  store.DocumentStore
	logger *slog.Logger
}

// WorkspaceOption configures a Workspace.
type WorkspaceOption func(*workspaceOptions)

type workspaceOptions struct {
	logger    *slog.Logger
	storeOpts []markdown.Option
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) WorkspaceOption {
	return func(o *workspaceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStoreOptions passes options through to the underlying store.
func WithStoreOptions(opts ...markdown.Option) WorkspaceOption {
	return func(o *workspaceOptions) {
		o.storeOpts = append(o.storeOpts, opts...)
	}
}

// Init scaffolds the workspace directory layout at root.
func Init(root string) error {
	return markdown.Init(root)
}

// Open opens the workspace rooted at root.
func Open(root string, opts ...WorkspaceOption) (*Workspace, error) {
	// Apply options
	options := &workspaceOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	storeOpts := append([]markdown.Option{markdown.WithLogger(options.logger)}, options.storeOpts...)
	docStore, err := markdown.NewStore(root, storeOpts...)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		store:  docStore,
		logger: options.logger,
	}, nil
}

func (w *Workspace) Close() error {
	if err := w.store.Close(); err != nil {
		w.logger.Error("error closing document store", "err", err)
		return err
	}
	return nil
}

func (w *Workspace) Store() store.DocumentStore {
	return w.store
}

// Search lists the documents of docType and ranks them against query.
func (w *Workspace) Search(ctx context.Context, query string, docType core.DocType, opts ...search.Option) ([]*core.SearchResult, error) {
	engine, err := search.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	docs, err := w.store.ListDocuments(ctx, docType)
	if err != nil {
		return nil, err
	}

	return engine.Search(query, docs), nil
}

func (w *Workspace) NewExtractor(opts ...session.Option) (*session.Extractor, error) {
	return session.NewExtractor(append([]session.Option{session.WithLogger(w.logger)}, opts...)...)
}
