package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/query"
)

func TestViewSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.submissions.Upsert(ctx, 1, "Government", "Team A", model.PositionFor)
	require.NoError(t, err)

	result, err := ViewSchedule(ctx, f.schedule, f.submissions, f.policy, f.logger, "", afterReveal)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, []string{"Team A", "Team B", "Team C"}, result.Teams)

	// Debate 1: deadline passed, Team A revealed, Team B not submitted
	first := result.Rows[0]
	assert.Equal(t, query.Revealed, first.Labels[0].Kind)
	assert.Equal(t, model.PositionFor, first.Labels[0].Position)
	assert.Equal(t, query.NotSubmitted, first.Labels[1].Kind)
	assert.Equal(t, query.Empty, first.Labels[2].Kind)

	// Debate 2: Oct deadline not reached at afterReveal (Sep 25)
	second := result.Rows[1]
	assert.Equal(t, query.Pending, second.Labels[0].Kind)
	assert.Equal(t, query.Pending, second.Labels[1].Kind)

	// Debate 3: no reveal entry for Dec 31
	third := result.Rows[2]
	assert.Equal(t, query.ConfigError, third.Labels[0].Kind)
}

func TestViewSchedule_NeverRevealsBeforeDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.submissions.Upsert(ctx, 1, "Government", "Team A", model.PositionFor)
	require.NoError(t, err)

	result, err := ViewSchedule(ctx, f.schedule, f.submissions, f.policy, f.logger, "", beforeReveal)
	require.NoError(t, err)

	for _, label := range result.Rows[0].Labels[:2] {
		assert.NotEqual(t, query.Revealed, label.Kind)
		assert.NotEqual(t, query.NotSubmitted, label.Kind)
		assert.Equal(t, query.Pending, label.Kind)
	}
}

func TestViewSchedule_TeamFilter(t *testing.T) {
	f := newFixture(t)

	result, err := ViewSchedule(context.Background(), f.schedule, f.submissions, f.policy, f.logger, "team c", beforeReveal)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].Record.ID)

	// The team list always covers the whole schedule
	assert.Equal(t, []string{"Team A", "Team B", "Team C"}, result.Teams)
}

func TestViewSchedule_MissingScheduleIsFatal(t *testing.T) {
	f := newFixture(t)
	f.schedule = newMissingScheduleReader(t)

	_, err := ViewSchedule(context.Background(), f.schedule, f.submissions, f.policy, f.logger, "", beforeReveal)
	assert.Error(t, err)
}
