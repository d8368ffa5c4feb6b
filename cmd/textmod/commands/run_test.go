package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/textmod/cmd/textmod/opts"
	"github.com/walteh/textmod/pkg/config"
	"github.com/walteh/textmod/pkg/log"
	"github.com/walteh/textmod/pkg/session"
)

// lockedBuffer lets the test watch console output while the session writes it
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunSession_InterruptedWhileWaiting(t *testing.T) {
	log.DisableColor()

	tests := []struct {
		name      string
		answers   string
		waitFor   string
		wantStage session.State
		wantTail  string
		notWant   string
	}{
		{
			name:      "at_menu",
			answers:   "in.txt\n",
			waitFor:   "Enter your choice (1-7): ",
			wantStage: session.SelectTransform,
			wantTail:  "Operation cancelled.\n",
			notWant:   "Goodbye!",
		},
		{
			name:      "at_output_path",
			answers:   "in.txt\n1\n",
			waitFor:   "Enter output filename: ",
			wantStage: session.AwaitOutputPath,
			wantTail:  "\n\nProgram interrupted by user. Goodbye!\n",
			notWant:   "Operation cancelled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "in.txt", []byte("hello"), 0o644))

			pr, pw := io.Pipe()
			defer pw.Close()
			go func() {
				_, _ = io.WriteString(pw, tt.answers)
			}()

			out := &lockedBuffer{}
			cfg := config.Default()
			cfg.NoColor = true

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			ctx = log.NewContext(zerolog.Nop().WithContext(ctx), log.New(out, zerolog.Nop()))

			done := make(chan *session.Report, 1)
			go func() {
				done <- RunSession(ctx, &opts.RootOpts{Config: cfg, FS: fsys, In: pr, Out: out})
			}()

			require.Eventually(t, func() bool {
				return strings.Contains(out.String(), tt.waitFor)
			}, 5*time.Second, 10*time.Millisecond, "session never reached %q", tt.waitFor)
			cancel()

			var report *session.Report
			select {
			case report = <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("session did not stop after cancellation")
			}

			require.NotNil(t, report)
			assert.Equal(t, session.ResultInterrupted, report.Result)
			assert.Equal(t, tt.wantStage, report.Stage)

			console := out.String()
			assert.True(t, strings.HasSuffix(console, tt.wantTail), "console should end with %q, got %q", tt.wantTail, console)
			assert.NotContains(t, console, tt.notWant)
			exists, err := afero.Exists(fsys, "out.txt")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestRunSession_ReportsConfigSource(t *testing.T) {
	log.DisableColor()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "textmod.json", []byte(`{"no_banner": true, "no_color": true}`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "in.txt", []byte("Hello"), 0o644))

	ctx := zerolog.Nop().WithContext(context.Background())
	cfg, err := config.Load(ctx, fsys, "textmod.json")
	require.NoError(t, err)

	out := &lockedBuffer{}
	ctx = log.NewContext(ctx, log.New(out, zerolog.Nop()))

	report := RunSession(ctx, &opts.RootOpts{
		Config: cfg,
		FS:     fsys,
		In:     strings.NewReader("in.txt\n2\nout.txt\n"),
		Out:    out,
	})

	require.NotNil(t, report)
	assert.Equal(t, session.ResultCompleted, report.Result)
	assert.True(t, strings.HasPrefix(out.String(), "Using config from textmod.json\n"), "got %q", out.String())

	data, err := afero.ReadFile(fsys, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
