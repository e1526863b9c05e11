package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// SignupResult reports a recorded position
type SignupResult struct {
	Submission model.SubmissionRecord
	Replaced   bool // an earlier submission for the same key was overwritten
}

// Signup records a team's position for one of its assigned debates. The
// team's stakeholder role is resolved from the schedule, and the sign-up is
// rejected once the debate's reveal deadline has passed. Submitting again
// before the deadline replaces the earlier position.
func Signup(
	ctx context.Context,
	schedule store.ScheduleSource,
	submissions store.SubmissionSource,
	policy *reveal.Policy,
	logger *zap.Logger,
	teamName string,
	debateID int,
	position model.Position,
	now time.Time,
) (*SignupResult, error) {
	logger.Debug("Starting signup",
		zap.String("team", teamName),
		zap.Int("debate_id", debateID),
		zap.String("position", string(position)))

	if !position.IsValid() {
		return nil, ErrInvalidPosition
	}

	found, err := FindTeamDebates(ctx, schedule, submissions, policy, logger, teamName, now)
	if err != nil {
		return nil, err
	}

	var target *TeamDebate
	for i := range found.Debates {
		if found.Debates[i].Record.ID == debateID {
			target = &found.Debates[i]
			break
		}
	}
	if target == nil {
		logger.Info("Debate not assigned to team",
			zap.String("team", teamName),
			zap.Int("debate_id", debateID))
		return nil, fmt.Errorf("%w: debate %d", ErrDebateNotFound, debateID)
	}

	if !target.Open {
		logger.Info("Sign-up rejected, deadline passed",
			zap.Int("debate_id", debateID),
			zap.Time("reveal_at", target.RevealAt))
		return nil, fmt.Errorf("%w: positions for debate %d revealed %s",
			ErrDeadlinePassed, debateID, target.RevealAt.Format("Jan 02 15:04"))
	}

	rec, err := submissions.Upsert(ctx, debateID, target.Stakeholder, found.TeamName, position)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	logger.Info("Position locked in",
		zap.Int("debate_id", debateID),
		zap.String("stakeholder", target.Stakeholder),
		zap.String("team", found.TeamName),
		zap.String("position", string(position)))

	return &SignupResult{
		Submission: rec,
		Replaced:   target.Existing != nil,
	}, nil
}

// IsUserError reports whether the error should be shown as a plain message
// rather than a failure
func IsUserError(err error) bool {
	return errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrDebateNotFound) ||
		errors.Is(err, ErrDeadlinePassed) ||
		errors.Is(err, ErrInvalidPosition)
}
