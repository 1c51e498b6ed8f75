package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncSessionStarted()
	IncSessionCompleted()
	IncAnswerSubmitted(true)
	IncAnswerSubmitted(false)
	ObserveSessionDurationMs(42000)

	out := Render()
	for _, want := range []string{
		"game_sessions_started_total",
		"game_sessions_completed_total",
		"game_answers_submitted_total",
		"game_answers_correct_total",
		"game_session_duration_ms_bucket{le=\"+Inf\"}",
		"game_session_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered metrics missing %q:\n%s", want, out)
		}
	}
}

func TestHistogramObservesIntoSingleBucket(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	// Snapshot counts are per-bucket; cumulation happens at render time.
	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d, want 3", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("bucket counts = %v, want [1 1]", snap.counts)
	}
	if snap.sum != 5055 {
		t.Fatalf("sum = %v, want 5055", snap.sum)
	}
}

func TestHistogramRendersCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_ms", "test histogram", h.Snapshot())
	out := buf.String()

	for _, want := range []string{
		"test_ms_bucket{le=\"10\"} 1",
		"test_ms_bucket{le=\"100\"} 2",
		"test_ms_bucket{le=\"+Inf\"} 3",
		"test_ms_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered histogram missing %q:\n%s", want, out)
		}
	}
}
