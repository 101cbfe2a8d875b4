// Package logging holds the process-wide structured logger shared by the
// frame pipeline, the renderers and the viewer.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is installed until SetLogger is called; confgrid stays quiet
// unless -v asks otherwise.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func silent() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent()) }

// SetLogger routes the sweep, the renderers and the gg canvas to l. A nil
// l turns logging back off. Frame workers may log while it runs.
//
// Levels:
//   - [slog.LevelDebug]: per-frame timings, pixel counts
//   - [slog.LevelInfo]: sweep start and finish, files written
//   - [slog.LevelWarn]: frames that failed while others succeeded
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	current.Store(l)
	gg.SetLogger(l)
}

// Logger is what the frame workers and the viewer log through.
func Logger() *slog.Logger { return current.Load() }
