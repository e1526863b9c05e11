package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// DiagnosticIssue is one schedule entry that can never reveal
type DiagnosticIssue struct {
	DebateID int
	DateTime string
	DayKey   string // empty when the date itself failed to parse
	Reason   string
}

// RevealEntry is one configured reveal schedule entry
type RevealEntry struct {
	DayKey   string
	RevealAt time.Time
	Passed   bool // reveal instant is at or before now
}

// DiagnosticsResult is the instructor's sanity check: schedule entries that
// cannot resolve to a reveal instant, plus the current app time against the
// configured reveal entries.
type DiagnosticsResult struct {
	Issues  []DiagnosticIssue
	Now     time.Time
	Entries []RevealEntry
}

// Diagnostics cross-checks every schedule date against the reveal schedule
// and reports the entries that would render as CONFIG ERROR, along with a
// view of the clock the reveal comparisons use.
func Diagnostics(
	ctx context.Context,
	schedule store.ScheduleSource,
	policy *reveal.Policy,
	logger *zap.Logger,
	now time.Time,
) (*DiagnosticsResult, error) {
	logger.Debug("Starting diagnostics")

	records, err := schedule.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	issues := make([]DiagnosticIssue, 0)
	for _, rec := range records {
		key, err := reveal.DayKey(rec.DateTime)
		if err != nil {
			issues = append(issues, DiagnosticIssue{
				DebateID: rec.ID,
				DateTime: rec.DateTime,
				Reason:   fmt.Sprintf("could not parse date: %v", err),
			})
			continue
		}

		if _, ok := policy.Lookup(key); !ok {
			issues = append(issues, DiagnosticIssue{
				DebateID: rec.ID,
				DateTime: rec.DateTime,
				DayKey:   key,
				Reason:   fmt.Sprintf("day key %q has no reveal schedule entry", key),
			})
		}
	}

	entries := make([]RevealEntry, 0)
	for _, key := range policy.Keys() {
		instant, _ := policy.Lookup(key)
		entries = append(entries, RevealEntry{
			DayKey:   key,
			RevealAt: instant,
			Passed:   !now.Before(instant),
		})
	}

	logger.Info("Diagnostics computed",
		zap.Int("debates", len(records)),
		zap.Int("issues", len(issues)))

	return &DiagnosticsResult{
		Issues:  issues,
		Now:     now,
		Entries: entries,
	}, nil
}
