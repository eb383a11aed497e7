package timeline

import (
	"fmt"
	"testing"
	"time"

	"crm-inbox-backend/internal/model"
)

var testNow = time.Date(2024, 1, 8, 16, 45, 0, 0, time.UTC)

func TestResolveRelativeUnits(t *testing.T) {
	cases := []struct {
		label string
		want  time.Time
	}{
		{"now", testNow},
		{"45m", testNow.Add(-45 * time.Minute)},
		{"2h", testNow.Add(-2 * time.Hour)},
		{"3d", testNow.Add(-3 * 24 * time.Hour)},
		{"1w", testNow.Add(-7 * 24 * time.Hour)},
		{"1mo", testNow.Add(-30 * 24 * time.Hour)},
		{"2mo", testNow.Add(-60 * 24 * time.Hour)},
	}

	for _, tc := range cases {
		got := Resolve(tc.label, testNow)
		if !got.Equal(tc.want) {
			t.Errorf("Resolve(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestResolveMonthsNotMinutes(t *testing.T) {
	mo := Resolve("1mo", testNow)
	m := Resolve("1m", testNow)
	if !mo.Before(m) {
		t.Fatalf("1mo (%v) should resolve earlier than 1m (%v)", mo, m)
	}
	if Parse("1mo").Kind != KindMonths {
		t.Fatalf("expected 1mo to parse as months, got %v", Parse("1mo").Kind)
	}
}

func TestResolveStrictlyDecreasing(t *testing.T) {
	for _, unit := range []string{"m", "h", "d", "w", "mo"} {
		prev := Resolve("now", testNow)
		for n := 1; n <= 5; n++ {
			got := Resolve(fmt.Sprintf("%d%s", n, unit), testNow)
			if !got.Before(prev) {
				t.Fatalf("Resolve(%d%s) = %v, not before %v", n, unit, got, prev)
			}
			prev = got
		}
	}
}

func TestResolveAbsolute(t *testing.T) {
	got := Resolve("11th Sep 2025 at 11:46", testNow)
	want := time.Date(2025, 9, 11, 11, 46, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Resolve absolute = %v, want %v", got, want)
	}

	for _, label := range []string{"1st Jan 2024 at 00:01", "2nd Feb 2024 at 09:30", "3rd Mar 2024 at 23:59"} {
		if Parse(label).Kind != KindAbsolute {
			t.Errorf("expected %q to parse as absolute", label)
		}
	}
}

func TestResolveMalformedReturnsEpoch(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	for _, label := range []string{"", "garbage", "-5m", "m", "mo", "12x", "99", "soon at noon", "32nd Xyz 2024 at 25:00"} {
		got := Resolve(label, testNow)
		if !got.Equal(epoch) {
			t.Errorf("Resolve(%q) = %v, want epoch", label, got)
		}
	}
}

func TestMergeOrdersAscending(t *testing.T) {
	messages := []model.MessageItem{
		{MessageID: "m1", Timestamp: "2h"},
		{MessageID: "m2", Timestamp: "45m"},
	}
	system := []model.SystemMessageItem{
		{SystemMessageID: "s1", Timestamp: "1h"},
		{SystemMessageID: "s2", Timestamp: "now"},
	}

	entries := Merge(messages, system, testNow)
	wantOrder := []string{"m1", "s1", "m2", "s2"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].ID() != want {
			t.Errorf("entry %d = %s, want %s", i, entries[i].ID(), want)
		}
	}
}

func TestMergeStableOnTies(t *testing.T) {
	messages := []model.MessageItem{
		{MessageID: "m1", Timestamp: "1h"},
		{MessageID: "m2", Timestamp: "1h"},
	}
	system := []model.SystemMessageItem{
		{SystemMessageID: "s1", Timestamp: "1h"},
	}

	entries := Merge(messages, system, testNow)
	wantOrder := []string{"m1", "m2", "s1"}
	for i, want := range wantOrder {
		if entries[i].ID() != want {
			t.Fatalf("tie order violated at %d: got %s, want %s", i, entries[i].ID(), want)
		}
	}
}

func TestMergeIdempotentForFixedNow(t *testing.T) {
	messages := []model.MessageItem{
		{MessageID: "m1", Timestamp: "3d"},
		{MessageID: "m2", Timestamp: "2h"},
		{MessageID: "m3", Timestamp: "garbage"},
	}
	system := []model.SystemMessageItem{
		{SystemMessageID: "s1", Timestamp: "now"},
	}

	first := Merge(messages, system, testNow)
	second := Merge(messages, system, testNow)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID() != second[i].ID() {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i].ID(), second[i].ID())
		}
	}
}

func TestFormatAbsolute(t *testing.T) {
	cases := []struct {
		t    time.Time
		want string
	}{
		{time.Date(2025, 9, 11, 11, 46, 0, 0, time.UTC), "11th Sep 2025 at 11:46"},
		{time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC), "1st Jan 2024 at 09:05"},
		{time.Date(2024, 3, 22, 17, 0, 0, 0, time.UTC), "22nd Mar 2024 at 17:00"},
		{time.Date(2024, 5, 13, 8, 30, 0, 0, time.UTC), "13th May 2024 at 08:30"},
		{time.Date(2024, 5, 23, 8, 30, 0, 0, time.UTC), "23rd May 2024 at 08:30"},
	}

	for _, tc := range cases {
		if got := FormatAbsolute(tc.t); got != tc.want {
			t.Errorf("FormatAbsolute(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestFormatAbsoluteRoundTrips(t *testing.T) {
	when := time.Date(2025, 9, 11, 11, 46, 0, 0, time.UTC)
	if got := Resolve(FormatAbsolute(when), testNow); !got.Equal(when) {
		t.Fatalf("round trip = %v, want %v", got, when)
	}
}
