// Package reveal decides when declared positions become visible. Reveal
// instants are configured per calendar day, keyed year-independently by
// "Mon DD", so one schedule config covers a whole course offering without a
// literal timestamp per debate.
package reveal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/courseops/debate-signup/pkg/core/model"
)

// dayKeyLayout is the canonical form of a reveal schedule key, e.g. "Sep 26"
// or "Nov 07". Keys are zero-padded.
const dayKeyLayout = "Jan 02"

// Schedule maps a day key to the absolute instant positions reveal on that
// debate day. Built once at startup, never mutated.
type Schedule map[string]time.Time

// Policy resolves debate records to reveal instants
type Policy struct {
	schedule Schedule
}

// NewPolicy creates a Policy over the given schedule
func NewPolicy(schedule Schedule) *Policy {
	return &Policy{schedule: schedule}
}

// DayKey reduces a schedule "Date and Time" value to its year-independent
// day key. The date portion is tried as YYYY-MM-DD first, then as a textual
// "Mon DD" fallback; both formats are accepted input.
func DayKey(dateTime string) (string, error) {
	fields := strings.Fields(dateTime)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty date")
	}

	if dt, err := time.Parse("2006-01-02", fields[0]); err == nil {
		return dt.Format(dayKeyLayout), nil
	}

	if len(fields) >= 2 {
		if dt, err := time.Parse("Jan 2", strings.Join(fields[:2], " ")); err == nil {
			return dt.Format(dayKeyLayout), nil
		}
	}

	return "", fmt.Errorf("unrecognized date format: %q", dateTime)
}

// Instant returns the reveal instant for a debate, or false when the debate's
// date cannot be parsed or has no entry in the schedule. Pure: the same
// record and schedule always yield the same result.
func (p *Policy) Instant(rec model.DebateRecord) (time.Time, bool) {
	return p.InstantForDate(rec.DateTime)
}

// InstantForDate is Instant for a raw "Date and Time" value
func (p *Policy) InstantForDate(dateTime string) (time.Time, bool) {
	key, err := DayKey(dateTime)
	if err != nil {
		return time.Time{}, false
	}

	instant, ok := p.schedule[key]
	return instant, ok
}

// Keys returns the configured day keys in chronological order of their
// reveal instants
func (p *Policy) Keys() []string {
	keys := make([]string, 0, len(p.schedule))
	for k := range p.schedule {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return p.schedule[keys[i]].Before(p.schedule[keys[j]])
	})
	return keys
}

// Lookup returns the configured instant for a day key
func (p *Policy) Lookup(key string) (time.Time, bool) {
	instant, ok := p.schedule[key]
	return instant, ok
}
