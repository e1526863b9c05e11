package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/store"
)

// ResetSubmissions deletes every submission. Irreversible. The command layer
// must collect explicit two-step confirmation before calling this.
func ResetSubmissions(
	ctx context.Context,
	submissions store.SubmissionSource,
	logger *zap.Logger,
) error {
	logger.Debug("Starting resetSubmissions")

	if err := submissions.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset submissions: %w", err)
	}

	logger.Info("All submissions deleted")
	return nil
}
