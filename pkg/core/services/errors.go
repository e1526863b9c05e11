package services

import "errors"

var (
	// ErrTeamNotFound means the team name matched no slot in the schedule
	ErrTeamNotFound = errors.New("team name not found in the schedule")
	// ErrDebateNotFound means the debate ID matched no assignment for the team
	ErrDebateNotFound = errors.New("debate not found for team")
	// ErrDeadlinePassed means the sign-up window for the debate has closed
	ErrDeadlinePassed = errors.New("sign-up deadline has passed")
	// ErrInvalidPosition means the position was not "For" or "Against"
	ErrInvalidPosition = errors.New(`position must be "For" or "Against"`)
)
