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


// Package store defines the document store abstraction.
//
// The DocumentStore interface decouples document access from the backing
// medium. The canonical implementation lives in store/markdown and reads
// plain markdown files from a workspace directory; tests and tools can
// substitute their own implementations.
//
// There is no index and no cache behind this interface:
// every listing re-reads the backing files, so documents are always
// point-in-time snapshots and no invalidation protocol exists.
package store
