package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// Fixture: debates on Sep 20 (reveals Sep 24) and Oct 10 (reveals Oct 08),
// plus debate 3 on Dec 31 with no reveal entry.
const testScheduleCSV = `Debate,Date and Time,Resolution,Stakeholder 1,Team 1,Stakeholder 2,Team 2,Stakeholder 3,Team 3,Stakeholder 4,Team 4
1,2025-09-20 10:10,This house would ban homework,Government,Team A,Opposition,Team B,,,,
2,2025-10-10 10:10,This house supports a four-day week,Government,Team B,Opposition,Team A,,,,
3,2025-12-31 10:10,This house trusts the process,Government,Team C,,,,,,
`

type fixture struct {
	schedule    *store.ScheduleReader
	submissions *store.SubmissionStore
	policy      *reveal.Policy
	logger      *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	schedulePath := filepath.Join(dir, "schedule.csv")
	require.NoError(t, os.WriteFile(schedulePath, []byte(testScheduleCSV), 0644))

	return &fixture{
		schedule:    store.NewScheduleReader(schedulePath),
		submissions: store.NewSubmissionStore(filepath.Join(dir, "submissions.csv"), time.UTC),
		policy: reveal.NewPolicy(reveal.Schedule{
			"Sep 20": time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC),
			"Oct 10": time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC),
		}),
		logger: zap.NewNop(),
	}
}

// Instants around the Sep 24 reveal deadline of debate 1
var (
	beforeReveal = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	afterReveal  = time.Date(2025, 9, 25, 0, 0, 0, 0, time.UTC)
)

func newMissingScheduleReader(t *testing.T) *store.ScheduleReader {
	t.Helper()
	return store.NewScheduleReader(filepath.Join(t.TempDir(), "absent.csv"))
}

func newScheduleWithRow(t *testing.T, row string) *store.ScheduleReader {
	t.Helper()
	header := "Debate,Date and Time,Resolution,Stakeholder 1,Team 1,Stakeholder 2,Team 2,Stakeholder 3,Team 3,Stakeholder 4,Team 4\n"
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+row+"\n"), 0644))
	return store.NewScheduleReader(path)
}
