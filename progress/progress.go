// Package progress defines the progress reporting contract used during
// blob enumeration, along with ready-made reporters. Rendering is entirely
// the reporter's concern; the enumerator only announces a total and
// signals one increment per produced item.
package progress

import (
	"log/slog"
	"sync/atomic"
)

// Reporter receives enumeration progress. Start is called once with the
// total number of matches before any item is produced, Increment once per
// produced item, and Done exactly once when the enumeration ends — whether
// it was fully consumed, abandoned early, or failed.
type Reporter interface {
	Start(total int)
	Increment()
	Done()
}

// Nop returns a Reporter that discards all signals.
func Nop() Reporter {
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Start(int)  {}
func (nopReporter) Increment() {}
func (nopReporter) Done()      {}

// NewCallbackReporter adapts a callback of the form used elsewhere in
// catalyst-forge-libs (current and total counts) into a Reporter. The
// callback is invoked once at start with current == 0 and once per
// increment. It must be efficient as it may be called frequently.
func NewCallbackReporter(callback func(current, total int64)) Reporter {
	return &callbackReporter{callback: callback}
}

type callbackReporter struct {
	callback func(current, total int64)
	current  atomic.Int64
	total    atomic.Int64
}

func (r *callbackReporter) Start(total int) {
	r.total.Store(int64(total))
	r.callback(0, int64(total))
}

func (r *callbackReporter) Increment() {
	r.callback(r.current.Add(1), r.total.Load())
}

func (r *callbackReporter) Done() {}

// NewLogReporter returns a Reporter that logs progress through a
// slog.Logger. Progress lines are emitted at Info level every interval
// increments (every increment when interval <= 1), plus a final line from
// Done.
func NewLogReporter(logger *slog.Logger, interval int) Reporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if interval < 1 {
		interval = 1
	}
	return &logReporter{logger: logger, interval: interval}
}

type logReporter struct {
	logger   *slog.Logger
	interval int
	current  atomic.Int64
	total    atomic.Int64
}

func (r *logReporter) Start(total int) {
	r.total.Store(int64(total))
	r.logger.Info("enumeration started", "total", total)
}

func (r *logReporter) Increment() {
	current := r.current.Add(1)
	if current%int64(r.interval) == 0 {
		r.logger.Info("enumeration progress", "current", current, "total", r.total.Load())
	}
}

func (r *logReporter) Done() {
	r.logger.Info("enumeration finished", "produced", r.current.Load(), "total", r.total.Load())
}
