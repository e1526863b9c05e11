package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/csvtable"
)

// ErrScheduleNotFound means the schedule file is absent. The tool cannot run
// without a schedule, so callers treat this as fatal for the interaction.
var ErrScheduleNotFound = errors.New("schedule file not found")

// ScheduleReader loads the immutable debate schedule from a CSV file. The
// file is re-read on every Load so each interaction sees the latest copy on
// disk; nothing is cached across calls.
type ScheduleReader struct {
	path string
}

// NewScheduleReader creates a reader for the schedule file at path
func NewScheduleReader(path string) *ScheduleReader {
	return &ScheduleReader{path: path}
}

// Load reads every debate record from the schedule file
func (r *ScheduleReader) Load(ctx context.Context) ([]model.DebateRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := csvtable.ReadModels[ScheduleRow](r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrScheduleNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	records := make([]model.DebateRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}

	return records, nil
}
