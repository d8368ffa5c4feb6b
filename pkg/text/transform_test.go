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

package text

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

var samples = []string{
	"",
	"hello",
	"Hello World",
	" a   b  c ",
	"\tline one\nline two\r\n",
	"MiXeD cAsE 123 !?",
	"héllo wörld ünïcödé",
	"日本語のテキスト",
	"emoji 🎉 party 🎈",
	strings.Repeat("abc ", 100),
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    Kind
		want    string
	}{
		{name: "upper", content: "hello World", kind: Upper, want: "HELLO WORLD"},
		{name: "upper_sharp_s", content: "straße", kind: Upper, want: "STRASSE"},
		{name: "lower", content: "Hello WORLD", kind: Lower, want: "hello world"},
		{name: "title", content: "hello wORLD foo", kind: Title, want: "Hello World Foo"},
		{name: "title_multiline", content: "first line\nsecond LINE", kind: Title, want: "First Line\nSecond Line"},
		{name: "reverse", content: "abc def", kind: Reverse, want: "fed cba"},
		{name: "reverse_multibyte", content: "héllo", kind: Reverse, want: "olléh"},
		{name: "duplicate", content: "ab", kind: Duplicate, want: "abab"},
		{name: "collapse_whitespace", content: " a   b  c ", kind: CollapseWhitespace, want: "a b c"},
		{name: "collapse_mixed_whitespace", content: "\ta\n\nb\r\n c\t", kind: CollapseWhitespace, want: "a b c"},
		{name: "collapse_only_whitespace", content: " \t\n ", kind: CollapseWhitespace, want: ""},
		{name: "identity", content: " keep  THIS ", kind: Identity, want: " keep  THIS "},
		{name: "unknown_kind_is_unchanged", content: "keep", kind: Kind(42), want: "keep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transform(tt.content, tt.kind))
		})
	}
}

func TestTransform_EmptyInput(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			assert.Equal(t, "", Transform("", k))
		})
	}
}

func TestTransform_Properties(t *testing.T) {
	for _, s := range samples {
		assert.Equal(t, s, Transform(s, Identity), "identity must not change %q", s)

		doubled := Transform(s, Duplicate)
		assert.Equal(t, s+s, doubled)
		assert.Equal(t, 2*utf8.RuneCountInString(s), utf8.RuneCountInString(doubled))

		assert.Equal(t, s, Transform(Transform(s, Reverse), Reverse), "reverse must be its own inverse for %q", s)

		for _, r := range Transform(s, Upper) {
			assert.False(t, unicode.IsLower(r), "upper result of %q contains lowercase %q", s, r)
		}
		for _, r := range Transform(s, Lower) {
			assert.False(t, unicode.IsUpper(r), "lower result of %q contains uppercase %q", s, r)
		}

		collapsed := Transform(s, CollapseWhitespace)
		assert.NotContains(t, collapsed, "  ")
		assert.Equal(t, strings.TrimSpace(collapsed), collapsed)
	}
}

func TestKindFromChoice(t *testing.T) {
	tests := []struct {
		name      string
		choice    string
		want      Kind
		wantError bool
	}{
		{name: "first", choice: "1", want: Upper},
		{name: "last", choice: "7", want: Identity},
		{name: "surrounding_space", choice: "  6 ", want: CollapseWhitespace},
		{name: "zero", choice: "0", wantError: true},
		{name: "eight", choice: "8", wantError: true},
		{name: "leading_zero", choice: "01", wantError: true},
		{name: "word", choice: "upper", wantError: true},
		{name: "empty", choice: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindFromChoice(tt.choice)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindNames(t *testing.T) {
	want := []string{"upper", "lower", "title", "reverse", "double", "remove_spaces", "default"}
	for i, k := range Kinds() {
		assert.Equal(t, want[i], k.String())
		assert.NotEmpty(t, k.Label())
	}

	assert.Equal(t, "unknown(0)", Kind(0).String())
	assert.Empty(t, Kind(0).Label())
}
