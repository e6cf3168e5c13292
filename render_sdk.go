package gridrow

import (
	"context"
	"io"
	"strings"

	"pkt.systems/gridrow/internal/render"
	"pkt.systems/gridrow/internal/screen"
	"pkt.systems/pslog"
)

// RenderOptions configures a text render.
type RenderOptions struct {
	Config Config
	Text   string
	// FullScreen redraws the whole buffer with cursor addressing instead of
	// printing the used rows line by line.
	FullScreen bool
	Logger     pslog.Logger
}

// Render lays Text out on a screen buffer of the configured size and writes
// it to w as ANSI output.
func Render(ctx context.Context, w io.Writer, opts RenderOptions) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fill, err := cfg.Row.Fill.Attr()
	if err != nil {
		return err
	}

	buf, err := screen.New(cfg.Row.Width, cfg.Screen.Rows, fill, logger.With("component", "screen"))
	if err != nil {
		return err
	}
	buf.SetPen(fill)
	if err := buf.Write(opts.Text); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.FullScreen {
		logger.Debug("render screen", "cols", buf.Cols(), "rows", buf.Rows())
		return render.Screen(w, buf)
	}

	used := usedRows(buf.Lines())
	logger.Debug("render rows", "cols", buf.Cols(), "rows", used)
	for y := range used {
		if err := render.Row(w, buf.Row(y)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func usedRows(lines []string) int {
	for y := len(lines) - 1; y >= 0; y-- {
		if strings.TrimRight(lines[y], " ") != "" {
			return y + 1
		}
	}
	return 0
}
