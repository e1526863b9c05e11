package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/csvtable"
)

// submittedAtLayout matches the timestamps already present in existing
// submissions files, so the format must not change.
const submittedAtLayout = "2006-01-02 15:04:05 MST"

// SubmissionStore owns the submissions file. It is the single writer: every
// read-modify-write cycle runs under one process-wide mutex, and each Upsert
// rewrites the whole table and syncs it before releasing the lock.
//
// A failed write mid-rewrite can lose the previous table; there is no
// temp-file-and-rename step. The fragility is contained here so it can be
// hardened without touching callers.
type SubmissionStore struct {
	path string
	loc  *time.Location
	now  func() time.Time

	mu sync.Mutex
}

// NewSubmissionStore creates a store over the submissions file at path.
// Timestamps are recorded in loc.
func NewSubmissionStore(path string, loc *time.Location) *SubmissionStore {
	return &SubmissionStore{
		path: path,
		loc:  loc,
		now:  time.Now,
	}
}

// LoadAll returns every persisted submission. If the backing file does not
// exist yet it is initialized with a header row and an empty table is
// returned.
func (s *SubmissionStore) LoadAll(ctx context.Context) ([]model.SubmissionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

// Upsert records a position for (debateID, stakeholder), replacing any
// earlier submission for the same key. The write is durable before the lock
// is released.
func (s *SubmissionStore) Upsert(ctx context.Context, debateID int, stakeholder, teamName string, position model.Position) (model.SubmissionRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.SubmissionRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		return model.SubmissionRecord{}, err
	}

	rec := model.SubmissionRecord{
		DebateID:    debateID,
		Stakeholder: stakeholder,
		TeamName:    teamName,
		Position:    position,
		SubmittedAt: s.now().In(s.loc).Format(submittedAtLayout),
	}

	found := false
	for i := range records {
		if records[i].DebateID == debateID && records[i].Stakeholder == stakeholder {
			records[i] = rec
			found = true
			break
		}
	}
	if !found {
		records = append(records, rec)
	}

	rows := make([]SubmissionRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, rowFromRecord(r))
	}

	if err := csvtable.WriteModels(s.path, rows); err != nil {
		return model.SubmissionRecord{}, fmt.Errorf("failed to save submissions: %w", err)
	}

	return rec, nil
}

// Reset deletes the submissions file. Irreversible; the next LoadAll
// recreates a header-only table.
func (s *SubmissionStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete submissions file: %w", err)
	}

	return nil
}

// loadLocked reads the whole table. Callers must hold s.mu.
func (s *SubmissionStore) loadLocked() ([]model.SubmissionRecord, error) {
	rows, err := csvtable.ReadModels[SubmissionRow](s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			headers, herr := csvtable.HeadersFromModel(SubmissionRow{})
			if herr != nil {
				return nil, herr
			}
			if err := csvtable.EnsureFile(s.path, headers); err != nil {
				return nil, fmt.Errorf("failed to initialize submissions file: %w", err)
			}
			return []model.SubmissionRecord{}, nil
		}
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	records := make([]model.SubmissionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToRecord())
	}

	return records, nil
}
