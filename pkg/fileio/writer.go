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
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/textmod/pkg/log"
)

// 🎯 Outcome is the non-error result of a write
type Outcome int

const (
	Written Outcome = iota + 1
	// Declined means the user refused to overwrite an existing file
	Declined
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case Declined:
		return "declined"
	default:
		return "unknown"
	}
}

// 🤝 Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// ✍️ Writer persists text, asking before it overwrites an existing file
type Writer struct {
	fs        afero.Fs
	console   *log.Logger
	confirmer Confirmer
	perm      os.FileMode
}

// 🏭 NewWriter creates a writer over fsys
func NewWriter(fsys afero.Fs, console *log.Logger, confirmer Confirmer) *Writer {
	return &Writer{
		fs:        fsys,
		console:   console,
		confirmer: confirmer,
		perm:      0o644,
	}
}

// ✍️ Write stores content at path.
// A declined overwrite is returned as Declined with a nil error. I/O failures are
// returned as *Failure. Errors from the confirmer (e.g. an interrupt) are returned as-is.
func (w *Writer) Write(ctx context.Context, path string, content string) (Outcome, error) {
	logger := zerolog.Ctx(ctx)

	info, err := w.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return 0, w.fail(ctx, path, errIsDirectory)
	case err == nil:
		ok, err := w.confirmer.Confirm(ctx, fmt.Sprintf("⚠️  File '%s' already exists. Overwrite? (y/n): ", path))
		if err != nil {
			return 0, errors.Errorf("confirming overwrite of %s: %w", path, err)
		}
		if !ok {
			logger.Debug().Str("path", path).Msg("overwrite declined")
			w.console.Print("Operation cancelled.")
			return Declined, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return 0, w.fail(ctx, path, err)
	}

	if err := w.write(path, content); err != nil {
		return 0, w.fail(ctx, path, err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	w.console.Successf("Successfully wrote to %s", path)
	return Written, nil
}

func (w *Writer) write(path string, content string) (err error) {
	file, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(file, content)
	return err
}

func (w *Writer) fail(ctx context.Context, path string, err error) *Failure {
	f := newFailure("write", path, err)
	if f.Kind != PermissionDenied {
		// a missing parent directory is not a "not found" for the file being written
		f.Kind = OtherIO
	}
	zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Stringer("kind", f.Kind).Msg("write failed")
	if f.Kind == PermissionDenied {
		w.console.Errorf("Error: Permission denied to write to '%s'.", path)
	} else {
		w.console.Errorf("Error: Unable to write to file '%s': %v", path, err)
	}
	return f
}
