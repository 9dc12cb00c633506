// Copyright 2025 walteh LLC
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

// Package ignore decides which entries under a staging root are protected
// from removal during cleaning.
package ignore

import "strings"

// 🛡️ List is an ordered sequence of literal path prefixes. An entry is
// protected when its path relative to the clean root starts with any
// prefix in the list.
type List []string

// 🔍 Matches reports whether rel is protected by at least one prefix.
//
// Matching is a raw string prefix comparison against the path relative to
// the clean root: no globbing, no case folding, no separator
// normalization. A prefix "foo" protects both "foo" and "foo2/bar". A
// prefix with a trailing separator ("keep/") only matches paths that
// carry that separator at the matching position, so it protects the
// contents of keep/ but not the (then unremovable) directory itself —
// callers wanting to protect the directory entry too should list "keep".
func (l List) Matches(rel string) bool {
	for _, prefix := range l {
		if strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	return false
}
