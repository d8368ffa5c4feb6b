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

package fileio

import (
	"fmt"
	"io/fs"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
)

// 🏷️ FailureKind classifies a read or write failure
type FailureKind int

const (
	// OtherIO is any failure not covered by a more specific kind
	OtherIO FailureKind = iota
	NotFound
	PermissionDenied
	DecodeError
)

func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case PermissionDenied:
		return "permission_denied"
	case DecodeError:
		return "decode_error"
	default:
		return "other_io"
	}
}

// ❌ Failure is the error returned by Reader and Writer
type Failure struct {
	Op   string // "read" or "write"
	Path string
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", f.Op, f.Path, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// 🔍 KindOf returns the FailureKind carried by err, and false if err is not a Failure
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return OtherIO, false
}

// errIsDirectory is reported for directories on filesystems that would otherwise open them
var errIsDirectory = errors.Base("is a directory")

func classify(err error) FailureKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, encoding.ErrInvalidUTF8):
		return DecodeError
	default:
		return OtherIO
	}
}

func newFailure(op, path string, err error) *Failure {
	return &Failure{
		Op:   op,
		Path: path,
		Kind: classify(err),
		Err:  err,
	}
}
