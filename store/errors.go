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


package store

import "errors"

var (
	// ErrNotFound indicates that the requested document was not found.
	ErrNotFound = errors.New("document not found")

	// ErrCollectionMissing indicates the collection directory does not exist.
	ErrCollectionMissing = errors.New("collection directory missing")

	// ErrBadFrontMatter indicates unparseable YAML front matter.
	ErrBadFrontMatter = errors.New("malformed front matter")

	// ErrDuplicateID indicates an ID collision within one collection.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrWorkspaceExists indicates an init attempt over an existing workspace.
	ErrWorkspaceExists = errors.New("workspace already initialized")
)
