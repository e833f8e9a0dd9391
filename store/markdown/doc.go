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


// Package markdown implements store.DocumentStore over plain markdown
// files in a workspace directory.
//
// The workspace holds one subdirectory per collection (pages, plans,
// patterns, specs, knowledge). Files are named "NNN-slug.md"; the numeric
// prefix is the document ID within its collection. An optional YAML front
// matter block declares category and keywords, and the first heading line
// of the body is the document title.
//
// Listings re-read every file on each call. There is no index and nothing
// persists between calls besides the files themselves, so external edits
// are picked up immediately. File parsing within a single listing fans out
// over a worker pool; the returned snapshot is sorted and deduplicated.
package markdown
