package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitForCount(t *testing.T, n *atomic.Int32, want int32, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if n.Load() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected count %d, got %d", want, n.Load())
}

func TestDebouncer_BurstRunsOnce(t *testing.T) {
	var n atomic.Int32
	d := New(30*time.Millisecond, func() { n.Add(1) })

	for i := 0; i < 10; i++ {
		d.Call()
	}

	waitForCount(t, &n, 1, time.Second)

	// Nothing else fires afterwards.
	time.Sleep(80 * time.Millisecond)
	if n.Load() != 1 {
		t.Fatalf("expected exactly one execution, got %d", n.Load())
	}
}

func TestDebouncer_SeparatedCallsRunSeparately(t *testing.T) {
	var n atomic.Int32
	d := New(20*time.Millisecond, func() { n.Add(1) })

	d.Call()
	waitForCount(t, &n, 1, time.Second)
	d.Call()
	waitForCount(t, &n, 2, time.Second)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var n atomic.Int32
	d := New(30*time.Millisecond, func() { n.Add(1) })

	d.Call()
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	if n.Load() != 0 {
		t.Fatalf("stopped debouncer must not fire, got %d", n.Load())
	}
}
