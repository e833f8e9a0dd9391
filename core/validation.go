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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Title must not be empty (the store substitutes UntitledTitle)
//   - DocType on the file reference must be valid
//   - Id must not be negative (0 is valid for unnumbered legacy files)
//
// NOT validated:
//   - Content (an empty page scaffolded from a template is legal)
//   - Category and Keywords (both optional)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyTitle)
	}

	if doc.Id < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNegativeID)
	}

	if err := ValidateDocType(doc.File.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateDocType validates that a DocType has a known value.
func ValidateDocType(t DocType) error {
	if t < DocTypePage || t > DocTypeKnowledge {
		return fmt.Errorf("%w: value %d", ErrInvalidDocType, t)
	}
	return nil
}
