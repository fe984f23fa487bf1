package observability

import (
	"context"
	"testing"
	"time"
)

type countingEngine struct {
	NoopEngineHooks
	renders int
}

func (c *countingEngine) OnRenderComplete(context.Context, string, time.Duration, error) {
	c.renders++
}

type countingCache struct {
	NoopCacheHooks
	hits int
}

func (c *countingCache) OnCacheHit(context.Context, string) { c.hits++ }

func TestHookRegistration(t *testing.T) {
	t.Cleanup(Reset)

	eng := &countingEngine{}
	SetEngineHooks(eng)
	Engine().OnRenderComplete(context.Background(), "svg", time.Second, nil)
	if eng.renders != 1 {
		t.Errorf("renders = %d, want 1", eng.renders)
	}

	ch := &countingCache{}
	SetCacheHooks(ch)
	Cache().OnCacheHit(context.Background(), "render")
	if ch.hits != 1 {
		t.Errorf("hits = %d, want 1", ch.hits)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)
	eng := &countingEngine{}
	SetEngineHooks(eng)
	SetEngineHooks(nil)
	Engine().OnRenderComplete(context.Background(), "svg", 0, nil)
	if eng.renders != 1 {
		t.Errorf("nil registration replaced hooks")
	}
}

func TestReset(t *testing.T) {
	eng := &countingEngine{}
	SetEngineHooks(eng)
	Reset()
	Engine().OnRenderComplete(context.Background(), "svg", 0, nil)
	if eng.renders != 0 {
		t.Errorf("Reset() did not restore the no-op hooks")
	}
}
