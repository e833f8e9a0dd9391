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


// Package session extracts knowledge entries from session transcripts.
//
// A transcript is a JSON-lines stream of chat messages. The extractor
// collects markdown sections from assistant messages, deduplicates them by
// content fingerprint, and can persist the survivors as knowledge-entry
// documents through a store.
//
// Extraction is best-effort: malformed lines and messages without
// usable sections are skipped silently, never fatal.
package session
