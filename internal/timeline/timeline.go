// Package timeline resolves the human-relative timestamp labels the inbox
// stores ("45m", "2h", "now", "11th Sep 2025 at 11:46") into comparable
// instants, and merges a conversation's messages and system messages into a
// single chronological sequence.
package timeline

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"crm-inbox-backend/internal/model"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindNow
	KindMinutes
	KindHours
	KindDays
	KindWeeks
	KindMonths
	KindAbsolute
)

// Stamp is the result of parsing a timestamp label exactly once; resolving a
// Stamp against a reference instant is then a pure lookup on the kind.
type Stamp struct {
	Kind Kind
	N    int
	Abs  time.Time
}

const absoluteLayout = "2 Jan 2006 at 15:04"

var ordinalSuffix = regexp.MustCompile(`^(\d+)(st|nd|rd|th)\b`)

// Parse classifies a timestamp label. It is total: anything it cannot
// understand comes back as KindInvalid rather than an error, because malformed
// labels must degrade to epoch ordering instead of failing a render.
func Parse(label string) Stamp {
	label = strings.TrimSpace(label)
	if label == "now" {
		return Stamp{Kind: KindNow}
	}

	if strings.Contains(label, " at ") {
		cleaned := ordinalSuffix.ReplaceAllString(label, "$1")
		abs, err := time.Parse(absoluteLayout, cleaned)
		if err != nil {
			return Stamp{}
		}
		return Stamp{Kind: KindAbsolute, Abs: abs}
	}

	// "mo" must be checked before the single-letter units so "1mo" does not
	// read as 1 minute.
	if n, ok := relativeCount(label, "mo"); ok {
		return Stamp{Kind: KindMonths, N: n}
	}
	if n, ok := relativeCount(label, "m"); ok {
		return Stamp{Kind: KindMinutes, N: n}
	}
	if n, ok := relativeCount(label, "h"); ok {
		return Stamp{Kind: KindHours, N: n}
	}
	if n, ok := relativeCount(label, "d"); ok {
		return Stamp{Kind: KindDays, N: n}
	}
	if n, ok := relativeCount(label, "w"); ok {
		return Stamp{Kind: KindWeeks, N: n}
	}

	return Stamp{}
}

func relativeCount(label, unit string) (int, bool) {
	digits, found := strings.CutSuffix(label, unit)
	if !found || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolve converts a parsed stamp to an instant relative to now. Months use a
// flat 30 days; the reference product accepted that approximation and sort
// order near month boundaries inherits it.
func (s Stamp) Resolve(now time.Time) time.Time {
	switch s.Kind {
	case KindNow:
		return now
	case KindMinutes:
		return now.Add(-time.Duration(s.N) * time.Minute)
	case KindHours:
		return now.Add(-time.Duration(s.N) * time.Hour)
	case KindDays:
		return now.Add(-time.Duration(s.N) * 24 * time.Hour)
	case KindWeeks:
		return now.Add(-time.Duration(s.N) * 7 * 24 * time.Hour)
	case KindMonths:
		return now.Add(-time.Duration(s.N) * 30 * 24 * time.Hour)
	case KindAbsolute:
		return s.Abs
	default:
		return time.Unix(0, 0).UTC()
	}
}

// Resolve parses and resolves a label in one step. Pure and deterministic for
// a fixed now; callers sorting a collection must pass a single now snapshot so
// every element is measured against the same instant.
func Resolve(label string, now time.Time) time.Time {
	return Parse(label).Resolve(now)
}

// Entry is one element of a merged conversation timeline: exactly one of
// Message or System is set.
type Entry struct {
	Message *model.MessageItem
	System  *model.SystemMessageItem
}

func (e Entry) Timestamp() string {
	if e.Message != nil {
		return e.Message.Timestamp
	}
	if e.System != nil {
		return e.System.Timestamp
	}
	return ""
}

func (e Entry) ID() string {
	if e.Message != nil {
		return e.Message.MessageID
	}
	if e.System != nil {
		return e.System.SystemMessageID
	}
	return ""
}

// Merge interleaves messages and system messages ascending by resolved
// instant. The sort is stable: entries whose labels resolve to the same
// instant keep their input order (messages first, each list in insertion
// order), since reshuffling simultaneous events is visible in the UI.
func Merge(messages []model.MessageItem, systemMessages []model.SystemMessageItem, now time.Time) []Entry {
	type resolvedEntry struct {
		entry Entry
		at    time.Time
	}

	merged := make([]resolvedEntry, 0, len(messages)+len(systemMessages))
	for i := range messages {
		entry := Entry{Message: &messages[i]}
		merged = append(merged, resolvedEntry{entry: entry, at: Resolve(entry.Timestamp(), now)})
	}
	for i := range systemMessages {
		entry := Entry{System: &systemMessages[i]}
		merged = append(merged, resolvedEntry{entry: entry, at: Resolve(entry.Timestamp(), now)})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].at.Before(merged[j].at)
	})

	entries := make([]Entry, len(merged))
	for i, m := range merged {
		entries[i] = m.entry
	}
	return entries
}

// FormatAbsolute renders an instant in the absolute label form, e.g.
// "11th Sep 2025 at 11:46".
func FormatAbsolute(t time.Time) string {
	day := t.Day()
	suffix := "th"
	if day < 11 || day > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix + t.Format(" Jan 2006 at 15:04")
}
