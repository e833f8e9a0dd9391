package search

import "github.com/poiesic/scribe/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	IDShortcut(doc *core.Document)
	CategorySkipped(doc *core.Document)
	Scored(doc *core.Document, score core.SearchScore)
	Rejected(doc *core.Document, score core.SearchScore)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                {}
func (n *noopMonitor) IDShortcut(_ *core.Document)                   {}
func (n *noopMonitor) CategorySkipped(_ *core.Document)              {}
func (n *noopMonitor) Scored(_ *core.Document, _ core.SearchScore)   {}
func (n *noopMonitor) Rejected(_ *core.Document, _ core.SearchScore) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                 {}
