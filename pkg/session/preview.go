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

package session

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 🔍 Preview is the leading part of a result as shown to the user
type Preview struct {
	Text      string // first Limit characters, plus the marker when truncated
	Truncated bool
	Length    int // character count of the whole result
}

// 🔍 BuildPreview keeps the first limit characters of content and appends marker if anything was cut
func BuildPreview(content string, limit int, marker string) Preview {
	n := utf8.RuneCountInString(content)
	if n <= limit {
		return Preview{Text: content, Length: n}
	}

	cut := 0
	for i := range content {
		if cut == limit {
			return Preview{Text: content[:i] + marker, Truncated: true, Length: n}
		}
		cut++
	}
	// unreachable: n > limit guarantees the loop returns
	return Preview{Text: content, Length: n}
}

// 📊 previewPanel renders the length summary and the preview text
type previewPanel struct {
	label lipgloss.Style
}

func newPreviewPanel(w io.Writer, noColor bool) *previewPanel {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &previewPanel{label: r.NewStyle().Bold(true)}
}

func (p *previewPanel) render(original, modified int, preview Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d characters\n", p.label.Render("Original length:"), original)
	fmt.Fprintf(&b, "%s %d characters\n", p.label.Render("Modified length:"), modified)
	fmt.Fprintf(&b, "\n%s\n%s", p.label.Render("Preview:"), preview.Text)
	return b.String()
}
