package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/query"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// TeamDebate is one of a team's assigned debates with its sign-up state
type TeamDebate struct {
	Record      model.DebateRecord
	Stakeholder string
	RevealAt    time.Time // zero when ConfigError
	ConfigError bool      // reveal instant could not be determined
	Open        bool      // sign-up still possible (deadline not passed)
	Existing    *model.SubmissionRecord
}

// FindTeamDebatesResult lists a team's debates
type FindTeamDebatesResult struct {
	TeamName string
	Debates  []TeamDebate
}

// FindTeamDebates finds every debate the team is assigned to, along with the
// team's stakeholder role, whether sign-up is still open, and any position
// already on record. Returns ErrTeamNotFound when the name matches nothing.
func FindTeamDebates(
	ctx context.Context,
	schedule store.ScheduleSource,
	submissions store.SubmissionSource,
	policy *reveal.Policy,
	logger *zap.Logger,
	teamName string,
	now time.Time,
) (*FindTeamDebatesResult, error) {
	logger.Debug("Starting findTeamDebates", zap.String("team", teamName))

	records, err := schedule.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	assigned := query.DebatesForTeam(records, teamName)
	if len(assigned) == 0 {
		logger.Info("Team not found", zap.String("team", teamName))
		return nil, ErrTeamNotFound
	}
	logger.Debug("Found assignments", zap.Int("count", len(assigned)))

	subs, err := submissions.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	idx := query.NewIndex(subs)

	debates := make([]TeamDebate, 0, len(assigned))
	for _, td := range assigned {
		entry := TeamDebate{
			Record:      td.Record,
			Stakeholder: td.Stakeholder,
		}

		instant, ok := policy.Instant(td.Record)
		if !ok {
			// No reveal instant means the deadline can never pass, so the
			// debate stays open for sign-up until the config is fixed
			entry.ConfigError = true
			entry.Open = true
		} else {
			entry.RevealAt = instant
			entry.Open = now.Before(instant)
		}

		if sub, ok := idx.Get(td.Record.ID, td.Stakeholder); ok {
			entry.Existing = &sub
		}

		debates = append(debates, entry)
	}

	logger.Info("Team debates resolved",
		zap.String("team", teamName),
		zap.Int("debates", len(debates)))

	return &FindTeamDebatesResult{TeamName: teamName, Debates: debates}, nil
}
