package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseDate("25-12-2026")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"25-12-2026"` {
		t.Fatalf("expected \"25-12-2026\", got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDate_UnmarshalNullAndEmpty(t *testing.T) {
	for _, raw := range []string{`null`, `""`} {
		var d Date
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !d.IsZero() {
			t.Fatalf("expected zero date for %s, got %v", raw, d)
		}
	}
}

func TestDate_UnmarshalRejectsOtherLayouts(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-12-25"`), &d); err == nil {
		t.Fatal("ISO layout must be rejected")
	}
}

func TestDate_After(t *testing.T) {
	today := Today()
	tomorrow := NewDate(today.AddDate(0, 0, 1))
	yesterday := NewDate(today.AddDate(0, 0, -1))

	if !tomorrow.After(today) {
		t.Error("tomorrow must be after today")
	}
	if today.After(today) {
		t.Error("today must not be after itself")
	}
	if yesterday.After(today) {
		t.Error("yesterday must not be after today")
	}
}

func TestNewDate_TruncatesToMidnightUTC(t *testing.T) {
	d := NewDate(time.Date(2026, 12, 25, 17, 42, 3, 0, time.FixedZone("X", 3600)))
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Fatalf("expected midnight, got %v", d)
	}
	if d.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", d.Location())
	}
}
