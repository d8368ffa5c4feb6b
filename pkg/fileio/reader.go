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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/walteh/textmod/pkg/log"
)

// 📖 Reader loads a whole file as UTF-8 text
type Reader struct {
	fs      afero.Fs
	console *log.Logger
}

// 🏭 NewReader creates a reader over fsys that reports to console
func NewReader(fsys afero.Fs, console *log.Logger) *Reader {
	return &Reader{fs: fsys, console: console}
}

// 📖 Read returns the full decoded content of path.
// Every failure is reported on the console and returned as a *Failure.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	content, err := r.read(path)
	if err != nil {
		f := newFailure("read", path, err)
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Stringer("kind", f.Kind).Msg("read failed")
		r.report(f)
		return "", f
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("read file")
	r.console.Successf("Successfully read %s", path)
	return content, nil
}

func (r *Reader) read(path string) (string, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", errIsDirectory
	}

	data, err := io.ReadAll(transform.NewReader(file, encoding.UTF8Validator))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reader) report(f *Failure) {
	switch f.Kind {
	case NotFound:
		r.console.Errorf("Error: The file '%s' was not found.", f.Path)
	case PermissionDenied:
		r.console.Errorf("Error: Permission denied to read '%s'.", f.Path)
	case DecodeError:
		r.console.Errorf("Error: Cannot decode the file '%s'. It might be a binary file.", f.Path)
	default:
		r.console.Errorf("Error: Unable to read file '%s': %v", f.Path, f.Err)
	}
}
