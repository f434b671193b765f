// Copyright 2026 Google LLC
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

// Package text has the word-level helpers used to read directive files.
package text

import (
	"errors"
	"strings"
)

// Whitespace is the default separator set for Split.
const Whitespace = " \t\n\r"

// ErrUnmatchedQuote is returned by MergeQuoted when a quote is never closed.
var ErrUnmatchedQuote = errors.New("missing matching quote")

// Split breaks s into the non-empty fields separated by any of the
// characters in separators.
func Split(s, separators string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

// RemoveComments truncates s at the first character found in marker.
func RemoveComments(s, marker string) string {
	if i := strings.IndexAny(s, marker); i >= 0 {
		return s[:i]
	}
	return s
}

const quote = '\''

// MergeQuoted joins words enclosed in single quotes back into one word, so
// that 'some dir' split on whitespace becomes "some dir". Text directly
// before an opening quote stays a separate word, and text after a closing
// quote is scanned again.
//
// If a quote is never closed, it is dropped, the remaining words are copied
// unchanged and ErrUnmatchedQuote is returned with the result.
func MergeQuoted(words []string) ([]string, error) {
	var out []string
	rest := append([]string(nil), words...)
	for len(rest) > 0 {
		word := rest[0]
		open := strings.IndexRune(word, quote)
		if open < 0 {
			out = append(out, word)
			rest = rest[1:]
			continue
		}

		// Find the closing quote, first in the same word, then in the following ones.
		endWord, end := 0, strings.IndexRune(word[open+1:], quote)
		if end >= 0 {
			end += open + 1
		} else {
			for endWord = 1; endWord < len(rest); endWord++ {
				if end = strings.IndexRune(rest[endWord], quote); end >= 0 {
					break
				}
			}
		}
		if end < 0 {
			out = append(out, word[:open]+word[open+1:])
			out = append(out, rest[1:]...)
			return out, ErrUnmatchedQuote
		}

		var merged string
		if endWord == 0 {
			merged = word[open+1 : end]
		} else {
			parts := []string{word[open+1:]}
			parts = append(parts, rest[1:endWord]...)
			parts = append(parts, rest[endWord][:end])
			merged = strings.Join(parts, " ")
		}
		if prefix := word[:open]; prefix != "" {
			out = append(out, prefix)
		}
		if merged != "" {
			out = append(out, merged)
		}

		remainder := rest[endWord][end+1:]
		rest = rest[endWord+1:]
		if remainder != "" {
			rest = append([]string{remainder}, rest...)
		}
	}
	return out, nil
}
