package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/store"
)

// OverrideResult reports an instructor-assigned position
type OverrideResult struct {
	Submission model.SubmissionRecord
}

// OverrideSubmission records a position on behalf of a team, bypassing the
// deadline check. Instructor use only: the caller is responsible for gating
// access.
func OverrideSubmission(
	ctx context.Context,
	submissions store.SubmissionSource,
	logger *zap.Logger,
	debateID int,
	stakeholder, teamName string,
	position model.Position,
) (*OverrideResult, error) {
	logger.Debug("Starting overrideSubmission",
		zap.Int("debate_id", debateID),
		zap.String("stakeholder", stakeholder),
		zap.String("team", teamName))

	if !position.IsValid() {
		return nil, ErrInvalidPosition
	}

	rec, err := submissions.Upsert(ctx, debateID, stakeholder, teamName, position)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	logger.Info("Position assigned by instructor",
		zap.Int("debate_id", debateID),
		zap.String("stakeholder", stakeholder),
		zap.String("team", teamName),
		zap.String("position", string(position)))

	return &OverrideResult{Submission: rec}, nil
}
