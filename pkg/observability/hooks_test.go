package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, "toml")
	p.OnParseComplete(ctx, "toml", 3, time.Second, nil)
	p.OnRenderStart(ctx, "roffman")
	p.OnRenderComplete(ctx, "roffman", 512, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "page:v1:abc")
	c.OnCacheMiss(ctx, "page:v1:abc")
	c.OnCacheSet(ctx, "page:v1:abc", 512)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "id", "POST", "/render")
	s.OnResponse(ctx, "id", "POST", "/render", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should default to NoopServerHooks")
	}

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	if Pipeline() != p {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	c := &testCacheHooks{}
	SetCacheHooks(c)
	if Cache() != c {
		t.Error("SetCacheHooks should set custom hooks")
	}
	s := &testServerHooks{}
	SetServerHooks(s)
	if Server() != s {
		t.Error("SetServerHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	RegisterLogHooks(logger)

	ctx := context.Background()
	Pipeline().OnParseComplete(ctx, "json", 2, time.Millisecond, nil)
	Pipeline().OnRenderComplete(ctx, "roffman", 0, time.Millisecond, errors.New("bad title"))
	Cache().OnCacheHit(ctx, "page:v1:abc")
	Server().OnResponse(ctx, "req-1", "POST", "/render", 400, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"parse done", "render failed", "bad title", "cache hit", "req-1", "status=400"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }
