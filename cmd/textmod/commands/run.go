package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/textmod/cmd/textmod/opts"
	"github.com/walteh/textmod/pkg/fileio"
	"github.com/walteh/textmod/pkg/log"
	"github.com/walteh/textmod/pkg/prompt"
	"github.com/walteh/textmod/pkg/session"
)

// NewRunCmd creates the interactive run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Transform a text file interactively",
		Long: `Run asks for a file, a transformation and an output path.
It will:
1. Read the input file as UTF-8 text
2. Apply the chosen transformation to the whole content
3. Write the result, asking before overwriting an existing file
4. Print a preview of the result`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())
			RunSession(ctx, opts)
			return nil
		},
	}

	return cmd
}

// RunSession runs one interactive session and reports how it ended.
// Nothing it does produces an error for the caller: interrupts and unexpected
// failures are explained on the console.
func RunSession(ctx context.Context, opts *opts.RootOpts) *session.Report {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	if opts.Config != nil && opts.Config.Location() != "" {
		console.Infof("Using config from %s", opts.Config.Location())
	}

	p := prompt.New(opts.In, opts.Out)
	s, err := session.New(session.Options{
		Prompter: p,
		Reader:   fileio.NewReader(opts.FS, console),
		Writer:   fileio.NewWriter(opts.FS, console, p),
		Console:  console,
		Config:   opts.Config,
	})
	if err != nil {
		console.Errorf("Unexpected error: %v", err)
		return nil
	}

	report, err := s.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrInterrupted):
		console.LogNewline()
		if report.Stage == session.SelectTransform {
			console.Print("Operation cancelled.")
		} else {
			console.LogNewline()
			console.Print("Program interrupted by user. Goodbye!")
		}
	default:
		console.LogNewline()
		console.Errorf("Unexpected error: %v", err)
	}

	logger.Info().
		Stringer("result", report.Result).
		Stringer("stage", report.Stage).
		Str("input", report.InputPath).
		Str("output", report.OutputPath).
		Stringer("kind", report.Kind).
		Int("original_length", report.OriginalLength).
		Int("modified_length", report.ModifiedLength).
		Msg("session finished")

	return report
}
