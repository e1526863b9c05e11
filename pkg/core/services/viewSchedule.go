package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/query"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// ScheduleRow is one debate with the label each slot shows at the queried
// instant
type ScheduleRow struct {
	Record model.DebateRecord
	Labels [model.MaxSlots]query.Label
}

// ViewScheduleResult contains the rendered schedule data
type ViewScheduleResult struct {
	Rows  []ScheduleRow
	Teams []string // every distinct team in the schedule, sorted
}

// ViewSchedule computes the full schedule view: every debate with per-slot
// position labels, optionally filtered to debates involving one team.
// Positions reveal automatically once the per-day deadline passes.
func ViewSchedule(
	ctx context.Context,
	schedule store.ScheduleSource,
	submissions store.SubmissionSource,
	policy *reveal.Policy,
	logger *zap.Logger,
	teamFilter string,
	now time.Time,
) (*ViewScheduleResult, error) {
	logger.Debug("Starting viewSchedule", zap.String("team_filter", teamFilter))

	records, err := schedule.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	logger.Debug("Schedule loaded", zap.Int("debates", len(records)))

	subs, err := submissions.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	logger.Debug("Submissions loaded", zap.Int("count", len(subs)))

	idx := query.NewIndex(subs)
	teams := allTeams(records)

	if teamFilter != "" {
		records = filterByTeam(records, teamFilter)
		logger.Debug("Applied team filter", zap.Int("debates", len(records)))
	}

	rows := make([]ScheduleRow, 0, len(records))
	for _, rec := range records {
		row := ScheduleRow{Record: rec}
		for i := range rec.Slots {
			row.Labels[i] = query.VisiblePosition(rec, i, idx, policy, now)
		}
		rows = append(rows, row)
	}

	result := &ViewScheduleResult{
		Rows:  rows,
		Teams: teams,
	}

	logger.Info("Schedule view computed",
		zap.Int("rows", len(result.Rows)),
		zap.Int("teams", len(result.Teams)))

	return result, nil
}

// filterByTeam keeps only debates with the team in one of their slots
func filterByTeam(records []model.DebateRecord, teamName string) []model.DebateRecord {
	filtered := make([]model.DebateRecord, 0)
	for _, rec := range records {
		for _, slot := range rec.Slots {
			if strings.EqualFold(strings.TrimSpace(slot.Team), strings.TrimSpace(teamName)) {
				filtered = append(filtered, rec)
				break
			}
		}
	}
	return filtered
}

// allTeams collects the distinct team names across every slot, sorted
func allTeams(records []model.DebateRecord) []string {
	seen := make(map[string]bool)
	teams := make([]string, 0)
	for _, rec := range records {
		for _, slot := range rec.Slots {
			if slot.IsEmpty() {
				continue
			}
			if !seen[slot.Team] {
				seen[slot.Team] = true
				teams = append(teams, slot.Team)
			}
		}
	}
	sort.Strings(teams)
	return teams
}
