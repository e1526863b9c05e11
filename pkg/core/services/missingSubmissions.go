package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/query"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// MissingSubmissionsResult lists past-deadline slots with no position on
// record
type MissingSubmissionsResult struct {
	Missing []query.MissingSlot
}

// MissingSubmissions finds every slot whose reveal deadline has passed
// without a submission. The instructor assigns positions for these manually.
func MissingSubmissions(
	ctx context.Context,
	schedule store.ScheduleSource,
	submissions store.SubmissionSource,
	policy *reveal.Policy,
	logger *zap.Logger,
	now time.Time,
) (*MissingSubmissionsResult, error) {
	logger.Debug("Starting missingSubmissions")

	records, err := schedule.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	subs, err := submissions.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	missing := query.MissingSubmissions(records, query.NewIndex(subs), policy, now)

	logger.Info("Missing submissions computed", zap.Int("count", len(missing)))

	return &MissingSubmissionsResult{Missing: missing}, nil
}
