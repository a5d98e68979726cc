// Package bench provides lightweight wall-clock timing for labeled sections
// of code. Timers report through the package logger when stopped.
package bench

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Timer measures elapsed wall-clock time for a named section.
type Timer struct {
	name    string
	start   time.Time
	stopped bool
	total   time.Duration
}

// Start begins timing a named section.
func Start(name string) *Timer {
	return &Timer{
		name:  name,
		start: time.Now(),
	}
}

// Name returns the section label.
func (t *Timer) Name() string {
	return t.name
}

// Elapsed returns the time since Start without stopping the timer. After
// Stop it returns the final measurement.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.total
	}
	return time.Since(t.start)
}

// Stop freezes the timer, logs the measurement, and returns it. Subsequent
// calls return the same duration without logging again.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.total
	}
	t.total = time.Since(t.start)
	t.stopped = true

	Logger().Info("section timed",
		zap.String("name", t.name),
		zap.Duration("elapsed", t.total))

	return t.total
}

// Measure times a single invocation of fn.
func Measure(name string, fn func()) time.Duration {
	t := Start(name)
	fn()
	return t.Stop()
}

// Throughput renders a humanized byte rate for n bytes processed in d.
func Throughput(n int64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(n) / d.Seconds()

	switch {
	case rate >= 1<<30:
		return fmt.Sprintf("%.2f GiB/s", rate/(1<<30))
	case rate >= 1<<20:
		return fmt.Sprintf("%.2f MiB/s", rate/(1<<20))
	case rate >= 1<<10:
		return fmt.Sprintf("%.2f KiB/s", rate/(1<<10))
	default:
		return fmt.Sprintf("%.0f B/s", rate)
	}
}
