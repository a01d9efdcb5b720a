package timeutil

import (
	"testing"
	"time"
)

func TestParseTimestampLayouts(t *testing.T) {
	want := time.Date(2024, 1, 2, 0, 30, 0, 0, time.UTC)
	cases := []string{
		"2024-01-02T00:30:00Z",
		"2024-01-01T19:30:00-05:00",
		"2024-01-02T00:30:00",
		"2024-01-02 00:30:00",
		" 2024-01-02T00:30 ",
	}
	for _, raw := range cases {
		got, err := ParseTimestamp(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("parse %q: expected %s, got %s", raw, want, got)
		}
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	if _, err := ParseTimestamp("tonight"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStampRoundTrip(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 5, 0, loc)
	stamp := FormatStamp(value)
	if stamp != "20240103T040005Z" {
		t.Fatalf("expected UTC stamp, got %s", stamp)
	}
	parsed, err := ParseStamp(stamp)
	if err != nil || !parsed.Equal(value) {
		t.Fatalf("expected round trip, got %s err=%v", parsed, err)
	}
}
