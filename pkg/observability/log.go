package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug events to a
// logger.
type LogHooks struct {
	Logger *log.Logger
}

// RegisterLogHooks installs LogHooks for all event kinds.
func RegisterLogHooks(logger *log.Logger) {
	h := LogHooks{Logger: logger}
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetServerHooks(h)
}

func (h LogHooks) OnParseStart(_ context.Context, format string) {
	h.Logger.Debug("parse start", "format", format)
}

func (h LogHooks) OnParseComplete(_ context.Context, format string, sections int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("parse failed", "format", format, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("parse done", "format", format, "sections", sections, "duration", d)
}

func (h LogHooks) OnRenderStart(_ context.Context, title string) {
	h.Logger.Debug("render start", "title", title)
}

func (h LogHooks) OnRenderComplete(_ context.Context, title string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "title", title, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("render done", "title", title, "bytes", size, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, key string) {
	h.Logger.Debug("cache hit", "key", key)
}

func (h LogHooks) OnCacheMiss(_ context.Context, key string) {
	h.Logger.Debug("cache miss", "key", key)
}

func (h LogHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.Logger.Debug("cache set", "key", key, "bytes", size)
}

func (h LogHooks) OnRequest(_ context.Context, id, method, path string) {
	h.Logger.Debug("request", "id", id, "method", method, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, id, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "id", id, "method", method, "path", path, "status", status, "duration", d)
}
