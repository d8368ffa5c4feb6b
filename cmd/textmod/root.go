package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/walteh/textmod/cmd/textmod/commands"
	"github.com/walteh/textmod/cmd/textmod/opts"
	"github.com/walteh/textmod/pkg/config"
	"github.com/walteh/textmod/pkg/log"
)

// rootFlags holds the flags shared by every command
type rootFlags struct {
	configFile string
	logFile    string
	debug      bool
}

// newRootCmd builds the command tree. Running it without a subcommand starts the
// interactive session.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{
		FS:  afero.NewOsFs(),
		In:  in,
		Out: out,
	}
	var logCloser io.Closer

	run := commands.NewRunCmd(rootOpts)

	cmd := &cobra.Command{
		Use:   "textmod",
		Short: "Read a text file, transform it, and write the result",
		Long: `textmod reads a text file, applies one of seven whole-content
transformations (upper, lower, title, reverse, double, remove extra spaces,
none) and writes the result to a new file.

Everything is asked interactively; press Ctrl+C at any prompt to leave.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer := setupLogging(flags.debug, flags.logFile)
			logCloser = closer

			console := log.New(out, logger)
			ctx := log.NewContext(logger.WithContext(cmd.Context()), console)
			cmd.SetContext(ctx)

			if !isTerminal(out) {
				log.DisableColor()
			}

			cfg, err := config.Resolve(ctx, rootOpts.FS, flags.configFile)
			if err != nil {
				console.Warningf("Ignoring config: %v", err)
				cfg = config.Default()
			}
			rootOpts.Config = cfg
			logger.Debug().Stringer("config", cfg).Msg("configuration resolved")

			if cfg.NoColor || !isTerminal(out) {
				log.DisableColor()
				cfg.NoColor = true
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: run.RunE,
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(run, newVersionCmd(out))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: textmod/config.* in the XDG config dirs)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "diagnostic log file (default: textmod/textmod.log in the XDG state dir)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging on stderr")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
