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


package search

import "errors"

var (
	// ErrEmptyQuery is returned by callers that reject blank queries before
	// invoking the engine. The engine itself accepts any query string.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrInvalidMinScore indicates a minimum score outside [0, 1].
	ErrInvalidMinScore = errors.New("min score must be between 0 and 1")

	// ErrInvalidMaxResults indicates a non-positive result limit.
	ErrInvalidMaxResults = errors.New("max results must be positive")

	// ErrInvalidFieldWeight indicates a field weight outside [0, 1].
	ErrInvalidFieldWeight = errors.New("field weight must be between 0 and 1")

	// errSimilarityUnavailable marks a failed string-distance computation.
	// It never leaves the package: scoring falls back to keyword containment.
	errSimilarityUnavailable = errors.New("similarity computation unavailable")
)
