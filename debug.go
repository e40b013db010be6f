package starfield

import (
	"log/slog"
	"time"
)

// logger receives debug records. Nothing is logged in normal operation.
var logger = slog.Default().With("component", "starfield")

// SetLogger replaces the package logger. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l.With("component", "starfield")
}

// debugLogInterval is how many frames are aggregated into one stats record.
const debugLogInterval = 60

// debugStats holds per-frame timing. Only populated in debug mode.
type debugStats struct {
	frames    int
	tickTime  time.Duration
	maxTick   time.Duration
	reseeds   int
	lastFlush time.Time
}

func (s *debugStats) record(d time.Duration) {
	s.frames++
	s.tickTime += d
	if d > s.maxTick {
		s.maxTick = d
	}
}

func (s *debugStats) reset(now time.Time) {
	*s = debugStats{lastFlush: now}
}

// SetDebugMode enables or disables debug mode. When enabled, frame timing,
// collection sizes and reseeds are logged at debug level once per second of
// frames.
func (sf *Starfield) SetDebugMode(enabled bool) {
	sf.debug = enabled
	sf.stats.reset(time.Now())
}

// debugLog flushes the aggregated stats.
func (sf *Starfield) debugLog() {
	if !sf.debug || sf.stats.frames == 0 {
		return
	}
	now := time.Now()
	avg := sf.stats.tickTime / time.Duration(sf.stats.frames)
	logger.Debug("frame stats",
		"frames", sf.stats.frames,
		"avgTick", avg,
		"maxTick", sf.stats.maxTick,
		"wall", now.Sub(sf.stats.lastFlush),
		"static", len(sf.field.Static),
		"shooting", len(sf.field.Shooting),
		"reseeds", sf.stats.reseeds,
		"scrollVelocity", sf.input.ScrollVelocity(),
	)
	sf.stats.reset(now)
}
