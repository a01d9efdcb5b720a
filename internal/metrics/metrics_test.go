package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("statsapi", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("statsapi", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("statsapi"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("statsapi"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("statsapi"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("statsapi")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("statsapi", 5*time.Second)
	rec.RecordRateLimit("statsapi", 0)

	if got := rec.RateLimitHits("statsapi"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("statsapi"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksResolutionsAndRoster(t *testing.T) {
	rec := NewRecorder()
	rec.RecordResolution(OutcomeMatched, time.Millisecond)
	rec.RecordResolution(OutcomeMatched, time.Millisecond)
	rec.RecordResolution(OutcomeNoMatch, time.Millisecond)
	rec.RecordRosterRefresh(10, map[string]int{ReasonStint: 3})
	rec.RecordRosterRefresh(12, map[string]int{ReasonStint: 1, ReasonVanished: 1})
	rec.RecordLiveGames("s3", 4)

	if got := rec.Resolutions(OutcomeMatched); got != 2 {
		t.Fatalf("expected 2 matches, got %d", got)
	}
	if got := rec.Resolutions(OutcomeNoMatch); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
	if got := rec.RosterDrops(ReasonStint); got != 4 {
		t.Fatalf("expected 4 stint drops, got %d", got)
	}
	if rec.RosterSize() != 12 || rec.LiveGames() != 4 {
		t.Fatalf("unexpected gauges size=%d live=%d", rec.RosterSize(), rec.LiveGames())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", time.Millisecond, nil)
	rec.RecordRateLimit("p", time.Second)
	rec.RecordResolution(OutcomeMatched, time.Millisecond)
	rec.RecordRosterRefresh(1, nil)
	rec.RecordLiveGames("local", 1)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.ProviderCalls("p") != 0 || rec.Resolutions(OutcomeMatched) != 0 || rec.RosterSize() != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
