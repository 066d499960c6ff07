package wing

import (
	"log/slog"
)

// flushTelemetry closes the stats window when it is due.
func (w *Wing) flushTelemetry() {
	if !w.collector.ShouldFlush(w.frame) {
		return
	}

	w.scales = w.engine.Scales(w.scales[:0])
	stats := w.collector.Flush(w.frame, w.engine.Len(), w.mode, w.store.Vector(), w.scales)
	perfStats := w.perf.Stats()

	if w.statsCallback != nil {
		w.statsCallback(stats)
	}

	if w.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if w.output != nil {
		if err := w.output.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := w.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
