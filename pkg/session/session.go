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
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/textmod/pkg/config"
	"github.com/walteh/textmod/pkg/fileio"
	"github.com/walteh/textmod/pkg/log"
	"github.com/walteh/textmod/pkg/prompt"
	"github.com/walteh/textmod/pkg/text"
)

// 💬 Prompter asks the user for free text and yes/no answers
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

// 📖 SourceReader loads the input file
type SourceReader interface {
	Read(ctx context.Context, path string) (string, error)
}

// ✍️ ResultWriter stores the output file
type ResultWriter interface {
	Write(ctx context.Context, path string, content string) (fileio.Outcome, error)
}

// 🔧 Options wires a session together
type Options struct {
	Prompter Prompter
	Reader   SourceReader
	Writer   ResultWriter
	Console  *log.Logger
	// Config supplies presentation settings; nil means config.Default()
	Config *config.Config
}

// 📋 Report describes how a session ended
type Report struct {
	Result         Result
	Stage          State // last state entered
	InputPath      string
	OutputPath     string
	Kind           text.Kind
	OriginalLength int // in characters
	ModifiedLength int // in characters
	Preview        Preview
}

// 🎮 Session drives one read → transform → write → preview cycle
type Session struct {
	prompter Prompter
	reader   SourceReader
	writer   ResultWriter
	console  *log.Logger
	cfg      *config.Config
	panel    *previewPanel
}

// 🏭 New creates a session with the given options
func New(opts Options) (*Session, error) {
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}
	if opts.Reader == nil {
		return nil, errors.Errorf("reader is required")
	}
	if opts.Writer == nil {
		return nil, errors.Errorf("writer is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{
		prompter: opts.Prompter,
		reader:   opts.Reader,
		writer:   opts.Writer,
		console:  opts.Console,
		cfg:      cfg,
		panel:    newPreviewPanel(opts.Console.Writer(), cfg.NoColor),
	}, nil
}

// 🏃 Run executes the session until it completes, the user aborts, or ctx is cancelled.
// An abort is a normal end and returns a nil error. An interrupt returns an error
// wrapping prompt.ErrInterrupted with Report.Result set to ResultInterrupted.
func (s *Session) Run(ctx context.Context) (report *Report, err error) {
	logger := zerolog.Ctx(ctx)
	report = &Report{}

	defer func() {
		if r := recover(); r != nil {
			report.Result = ResultFailed
			err = errors.Errorf("unexpected failure in %s: %v", report.Stage, r)
		}
	}()

	if !s.cfg.NoBanner {
		s.console.Header("📁 FILE HANDLER PROGRAM")
	}

	var source, result string

	for state := AwaitInputPath; state != Done; {
		report.Stage = state
		logger.Debug().Stringer("state", state).Msg("entering state")

		switch state {
		case AwaitInputPath:
			path, err := s.prompter.Ask(ctx, "\nEnter the filename to read: ")
			if err != nil {
				return s.stop(report, err)
			}
			if path == "" {
				s.console.Print("Please enter a valid filename.")
				continue
			}
			report.InputPath = path
			state = Reading

		case Reading:
			content, err := s.reader.Read(ctx, report.InputPath)
			if err == nil {
				source = content
				report.OriginalLength = utf8.RuneCountInString(source)
				state = SelectTransform
				continue
			}
			if _, ok := fileio.KindOf(err); !ok {
				return s.stop(report, err)
			}
			retry, err := s.prompter.Confirm(ctx, "Would you like to try another file? (y/n): ")
			if err != nil {
				return s.stop(report, err)
			}
			if !retry {
				s.console.Print("Goodbye!")
				report.Result = ResultAborted
				return report, nil
			}
			state = AwaitInputPath

		case SelectTransform:
			kind, err := s.selectKind(ctx)
			if err != nil {
				return s.stop(report, err)
			}
			report.Kind = kind
			state = Transforming

		case Transforming:
			result = text.Transform(source, report.Kind)
			report.ModifiedLength = utf8.RuneCountInString(result)
			logger.Debug().Stringer("kind", report.Kind).Int("original", report.OriginalLength).Int("modified", report.ModifiedLength).Msg("transformed content")
			state = AwaitOutputPath

		case AwaitOutputPath:
			path, err := s.prompter.Ask(ctx, "\nEnter output filename: ")
			if err != nil {
				return s.stop(report, err)
			}
			if path == "" {
				s.console.Print("Please enter a valid filename.")
				continue
			}
			report.OutputPath = path
			state = Writing

		case Writing:
			outcome, err := s.writer.Write(ctx, report.OutputPath, result)
			if err == nil && outcome == fileio.Written {
				state = ShowPreview
				continue
			}
			if err != nil {
				if _, ok := fileio.KindOf(err); !ok {
					return s.stop(report, err)
				}
			}
			retry, err := s.prompter.Confirm(ctx, "Would you like to try another filename? (y/n): ")
			if err != nil {
				return s.stop(report, err)
			}
			if !retry {
				s.console.Print("Operation cancelled.")
				report.Result = ResultAborted
				return report, nil
			}
			state = AwaitOutputPath

		case ShowPreview:
			report.Preview = BuildPreview(result, s.cfg.PreviewLength, s.cfg.Ellipsis)
			s.showPreview(report)
			report.Result = ResultCompleted
			state = Done
		}
	}

	report.Stage = Done
	return report, nil
}

// selectKind shows the menu and loops until a valid choice is entered
func (s *Session) selectKind(ctx context.Context) (text.Kind, error) {
	s.console.Print("\nChoose modification type:")
	for _, k := range text.Kinds() {
		s.console.Printf("%d. %s", int(k), k.Label())
	}

	for {
		answer, err := s.prompter.Ask(ctx, fmt.Sprintf("Enter your choice (1-%d): ", len(text.Kinds())))
		if err != nil {
			return 0, err
		}
		kind, err := text.KindFromChoice(answer)
		if err == nil {
			return kind, nil
		}
		s.console.Printf("Please enter a number between 1 and %d.", len(text.Kinds()))
	}
}

func (s *Session) showPreview(report *Report) {
	s.console.Section("📊 PREVIEW")
	s.console.Print(s.panel.render(report.OriginalLength, report.ModifiedLength, report.Preview))
	s.console.LogNewline()
	s.console.Done("Operation completed successfully!")
	s.console.Printf("📁 Output saved to: %s", report.OutputPath)
}

// stop ends the session on an error that is not a classified read or write failure
func (s *Session) stop(report *Report, err error) (*Report, error) {
	if errors.Is(err, prompt.ErrInterrupted) {
		report.Result = ResultInterrupted
	} else {
		report.Result = ResultFailed
	}
	return report, errors.Errorf("session stopped while %s: %w", report.Stage, err)
}
