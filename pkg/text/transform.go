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

// Package text applies whole-content text transformations.
package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 🔄 Transform applies kind to the whole of content and returns the result.
// It is pure and total: every kind maps every input, including "", to a defined output.
// Unknown kinds leave the content unchanged.
func Transform(content string, kind Kind) string {
	if content == "" {
		return content
	}

	switch kind {
	case Upper:
		return cases.Upper(language.Und).String(content)
	case Lower:
		return cases.Lower(language.Und).String(content)
	case Title:
		return cases.Title(language.Und).String(content)
	case Reverse:
		return reverse(content)
	case Duplicate:
		return content + content
	case CollapseWhitespace:
		return strings.Join(strings.Fields(content), " ")
	case Identity:
		return content
	default:
		return content
	}
}

// reverse reverses by rune, not by byte
func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
