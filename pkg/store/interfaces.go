package store

import (
	"context"

	"github.com/courseops/debate-signup/pkg/core/model"
)

// ScheduleSource defines the read-only schedule operations
type ScheduleSource interface {
	Load(ctx context.Context) ([]model.DebateRecord, error)
}

// SubmissionSource defines the submission store operations
type SubmissionSource interface {
	LoadAll(ctx context.Context) ([]model.SubmissionRecord, error)
	Upsert(ctx context.Context, debateID int, stakeholder, teamName string, position model.Position) (model.SubmissionRecord, error)
	Reset(ctx context.Context) error
}
