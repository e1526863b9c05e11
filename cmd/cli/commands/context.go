package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/courseops/debate-signup/internal/config"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg         *config.Config
	Schedule    store.ScheduleSource
	Submissions store.SubmissionSource
	Policy      *reveal.Policy
	Location    *time.Location
	Logger      *zap.Logger
	Ctx         context.Context
}

// Now returns the current instant in the configured timezone. Every reveal
// comparison in one command invocation uses a single Now value.
func (a *AppContext) Now() time.Time {
	return time.Now().In(a.Location)
}
