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

// Package prompt reads interactive answers from a line-oriented input.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInterrupted is returned when the context is cancelled while waiting for an answer
	ErrInterrupted = errors.Base("interrupted")
	// ErrInputClosed is returned once the input has no more lines
	ErrInputClosed = errors.Base("input closed")
)

type line struct {
	text string
	err  error
}

// 💬 Prompter asks questions on out and reads answers from in
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines chan line
	once  sync.Once
}

// 🏭 New creates a prompter. Nothing is read from in until the first question.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan line),
	}
}

// start launches the single goroutine that owns in.
// It sends every line and then, if scanning failed, the error; the channel is closed at EOF.
func (p *Prompter) start() {
	go func() {
		defer close(p.lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			p.lines <- line{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			p.lines <- line{err: err}
		}
	}()
}

// ❓ Ask prints question and returns the next answer with surrounding whitespace trimmed
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if ctx.Err() != nil {
		return "", errors.WithStack(ErrInterrupted)
	}
	p.once.Do(p.start)

	fmt.Fprint(p.out, question)

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", errors.WithStack(ErrInterrupted)
	case l, ok := <-p.lines:
		if !ok {
			return "", errors.WithStack(ErrInputClosed)
		}
		if l.err != nil {
			return "", errors.Errorf("reading answer: %w", l.err)
		}
		answer := strings.TrimSpace(l.text)
		zerolog.Ctx(ctx).Trace().Str("question", strings.TrimSpace(question)).Str("answer", answer).Msg("prompt answered")
		return answer, nil
	}
}

// ✅ Confirm asks a yes/no question; only "y" or "yes" (any case) count as yes
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer), nil
}

// IsAffirmative reports whether answer means yes
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
