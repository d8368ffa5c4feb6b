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
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Kind selects one whole-content transformation
type Kind int

// Menu order matters: the numeric value is the menu choice.
const (
	Upper Kind = iota + 1
	Lower
	Title
	Reverse
	Duplicate
	CollapseWhitespace
	Identity
)

var (
	// ErrUnknownKind is returned when a name or menu choice maps to no Kind
	ErrUnknownKind = errors.Base("unknown transformation")

	names = map[Kind]string{
		Upper:              "upper",
		Lower:              "lower",
		Title:              "title",
		Reverse:            "reverse",
		Duplicate:          "double",
		CollapseWhitespace: "remove_spaces",
		Identity:           "default",
	}

	labels = map[Kind]string{
		Upper:              "Convert to UPPERCASE",
		Lower:              "Convert to lowercase",
		Title:              "Convert to Title Case",
		Reverse:            "Reverse content",
		Duplicate:          "Double content",
		CollapseWhitespace: "Remove extra spaces",
		Identity:           "No modification",
	}
)

// 📋 Kinds returns every Kind in menu order
func Kinds() []Kind {
	return []Kind{Upper, Lower, Title, Reverse, Duplicate, CollapseWhitespace, Identity}
}

// String returns the stable name of the kind, as used in logs
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Label returns the human readable menu label
func (k Kind) Label() string {
	return labels[k]
}

// 🔢 KindFromChoice maps a menu answer "1".."7" to its Kind.
// Only the bare digits are accepted; "01" or "+1" are rejected.
func KindFromChoice(choice string) (Kind, error) {
	choice = strings.TrimSpace(choice)
	if len(choice) != 1 || choice[0] < '1' || choice[0] > '7' {
		return 0, errors.Errorf("%w: choice %q", ErrUnknownKind, choice)
	}
	return Kind(choice[0] - '0'), nil
}
