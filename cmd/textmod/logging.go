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

package main

import (
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging builds the diagnostic logger.
// The log file always receives info and above; stderr only gets output with --debug,
// so that the interactive console stays clean.
func setupLogging(debug bool, logFile string) (zerolog.Logger, io.Closer) {
	var writers []io.Writer
	level := zerolog.InfoLevel

	if debug {
		level = zerolog.DebugLevel
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}

	var closer io.Closer = nopCloser{}
	file, fileErr := openLogFile(logFile)
	if fileErr == nil {
		writers = append(writers, file)
		closer = file
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
	if debug {
		logger = logger.With().Caller().Logger()
	}
	if fileErr != nil {
		logger.Warn().Err(fileErr).Msg("failed to open log file, logging to stderr only")
	}
	return logger, closer
}

// openLogFile appends to path, or to $XDG_STATE_HOME/textmod/textmod.log when path is empty
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		path, err = xdg.StateFile("textmod/textmod.log")
		if err != nil {
			return nil, errors.Errorf("resolving log file path: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Errorf("opening log file: %w", err)
	}
	return file, nil
}
