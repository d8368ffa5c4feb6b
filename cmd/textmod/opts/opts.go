package opts

import (
	"io"

	"github.com/spf13/afero"

	"github.com/walteh/textmod/pkg/config"
)

// RootOpts contains shared options used by all commands.
// The console logger travels in the command context (log.FromContext).
type RootOpts struct {
	Config *config.Config
	FS     afero.Fs
	In     io.Reader
	Out    io.Writer
}
