package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and cache events to a logger at debug level.
// It implements both PipelineHooks and CacheHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, prefixing each line with
// "trace".
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger.WithPrefix("trace")}
}

func (h *LogHooks) OnParseStart(_ context.Context, source, format string) {
	h.Logger.Debug("parse start", "source", source, "format", format)
}

func (h *LogHooks) OnParseComplete(_ context.Context, source, format string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("parse failed", "source", source, "format", format, "err", err)
		return
	}
	h.Logger.Debug("parse done", "source", source, "nodes", nodeCount, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, nodeCount int) {
	h.Logger.Debug("layout start", "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, height, width int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("layout failed", "err", err)
		return
	}
	h.Logger.Debug("layout done", "height", height, "width", width, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.Logger.Debug("render done", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "key", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "key", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "key", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
