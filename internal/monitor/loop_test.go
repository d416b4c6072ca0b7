package monitor

import (
	"testing"

	"github.com/rs/zerolog"

	"vrhal/internal/openvr"
	"vrhal/internal/runtime/sim"
	"vrhal/pkg/types"
)

func newSimLoop(t *testing.T, d *sim.Driver) *Loop {
	t.Helper()
	b, err := openvr.InitWith(d, types.ApplicationBackground, zerolog.Nop())
	if err != nil {
		t.Fatalf("init backend: %v", err)
	}
	return New(b, 0.1, 100, zerolog.Nop())
}

func runFrames(l *Loop, n int) {
	targets := l.backend.TargetInfo(l.near, l.far)
	for i := 0; i < n; i++ {
		l.step(targets)
	}
}

func TestLoopStartsWaiting(t *testing.T) {
	l := newSimLoop(t, &sim.Driver{})
	if l.Ready() {
		t.Fatalf("loop must not be ready before the first frame")
	}
	st := l.Status()
	if st.State != "waiting" {
		t.Fatalf("expected waiting state, got %q", st.State)
	}
	if st.Trackers == nil || len(st.Trackers) != 0 {
		t.Fatalf("expected empty tracker list, got %v", st.Trackers)
	}
}

func TestLoopRegistersAndResolvesTrackers(t *testing.T) {
	l := newSimLoop(t, &sim.Driver{LoadDelay: 1})
	runFrames(l, 5)

	st := l.Status()
	if st.State != "running" {
		t.Fatalf("expected running, got %q", st.State)
	}
	if st.Frames != 5 {
		t.Fatalf("expected 5 frames, got %d", st.Frames)
	}
	if st.TargetWidth != 1512 || st.TargetHeight != 1680 {
		t.Fatalf("unexpected target size %dx%d", st.TargetWidth, st.TargetHeight)
	}
	if len(st.Trackers) != 3 {
		t.Fatalf("expected 3 trackers, got %d", len(st.Trackers))
	}
	for _, tr := range st.Trackers {
		if !tr.Valid {
			t.Fatalf("slot %d: expected valid pose", tr.Slot)
		}
		if tr.ModelState != "available" {
			t.Fatalf("slot %d: expected model available after 5 frames, got %q", tr.Slot, tr.ModelState)
		}
	}
	// ascending slot order
	for i := 1; i < len(st.Trackers); i++ {
		if st.Trackers[i-1].Slot >= st.Trackers[i].Slot {
			t.Fatalf("tracker list not ascending: %+v", st.Trackers)
		}
	}
	if !l.Ready() {
		t.Fatalf("loop must be ready after pumping frames")
	}
}

func TestLoopSeesDropout(t *testing.T) {
	l := newSimLoop(t, &sim.Driver{LoadDelay: 1, Dropout: true})

	runFrames(l, 239)
	if got := len(l.Trackers()); got != 3 {
		t.Fatalf("expected 3 trackers before dropout, got %d", got)
	}

	runFrames(l, 2) // frame 240 drops the right controller
	if got := len(l.Trackers()); got != 2 {
		t.Fatalf("expected 2 trackers during dropout, got %d", got)
	}

	runFrames(l, 240) // reconnects at frame 480
	if got := len(l.Trackers()); got != 3 {
		t.Fatalf("expected 3 trackers after reconnect, got %d", got)
	}
}

func TestStatusCopiesTrackerList(t *testing.T) {
	l := newSimLoop(t, &sim.Driver{LoadDelay: 1})
	runFrames(l, 2)

	st := l.Status()
	if len(st.Trackers) == 0 {
		t.Fatalf("expected trackers")
	}
	st.Trackers[0].Slot = 99
	if l.Status().Trackers[0].Slot == 99 {
		t.Fatalf("status mutated via returned slice")
	}
}
