package handlers

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/edgard/wabot/internal/bot"
)

const platformLabel = "Go (whatsmeow)"

// NewAliveHandler returns a handler for the alive command, reporting uptime,
// platform, version, and heap usage.
func NewAliveHandler(deps HandlerDeps) bot.HandlerFunc {
	return aliveHandler{deps}.Handle
}

type aliveHandler struct {
	deps HandlerDeps
}

func (h aliveHandler) Handle(ctx context.Context, msg bot.Message, _ []string) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	heapMB := float64(mem.HeapAlloc) / 1024 / 1024

	reply := fmt.Sprintf("%s is alive!\n\nUptime: %s\nPlatform: %s\nVersion: %s\nMemory: %.2f MB",
		h.deps.Config.Bot.Name,
		FormatUptime(h.deps.Store.Snapshot().Uptime()),
		platformLabel,
		h.deps.Config.Bot.Version,
		heapMB)

	if _, err := h.deps.Messenger.SendText(ctx, msg.Sender, reply); err != nil {
		return fmt.Errorf("failed to send alive reply: %w", err)
	}
	return nil
}

// FormatUptime decomposes a duration into whole hours, minutes, and seconds.
func FormatUptime(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm %ds", total/3600, (total/60)%60, total%60)
}
