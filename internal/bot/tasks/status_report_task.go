package tasks

import (
	"context"
	"runtime"
)

// newStatusReportTask creates a scheduled task that logs the current
// connection state, uptime, and heap usage. Purely observational.
func newStatusReportTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "status_report")

	return func(ctx context.Context) error {
		snap := deps.Store.Snapshot()

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		log.InfoContext(ctx, "Periodic status report",
			"state", snap.State,
			"ready", snap.Ready,
			"uptime", snap.Uptime().Round(0),
			"heap_mb", float64(mem.HeapAlloc)/1024/1024)
		return nil
	}
}
