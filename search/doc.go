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


// Package search provides fuzzy search and ranking over document collections.
//
// The Engine type scores a free-text query against every document it is
// given, combining several signals into one final score:
//   - Exact matching on title, category, and content
//   - Prefix-weighted string similarity (Jaro-Winkler) against title and
//     the opening of the content
//   - Per-field keyword relevance with declared keywords weighted highest
//   - Category affinity, recency decay, and title-specificity boosts
//
// Numeric queries short-circuit to an authoritative ID lookup. Results are
// filtered by a minimum score, ranked, truncated, and annotated with the
// fields that matched and human-readable highlight snippets.
//
// The engine is pure and synchronous: it performs no I/O, holds no per-call
// state, and is safe for concurrent use once constructed. Callers load
// documents through a store before searching.
package search
