package model

import "strings"

// Position is a declared debate position
type Position string

const (
	PositionFor     Position = "For"
	PositionAgainst Position = "Against"
)

func (p Position) IsValid() bool {
	return p == PositionFor || p == PositionAgainst
}

// MaxSlots is the number of (team, stakeholder) slots per debate
const MaxSlots = 4

// Slot is one (team, stakeholder) pairing within a debate. Slot order is
// stable: the slot index ties a stakeholder role to a position column.
type Slot struct {
	Team        string
	Stakeholder string
}

// IsEmpty reports whether no team is assigned to the slot
func (s Slot) IsEmpty() bool {
	return strings.TrimSpace(s.Team) == ""
}

// DebateRecord is one scheduled debate, loaded read-only from the schedule
// source. IDs are unique across the schedule.
type DebateRecord struct {
	ID         int
	DateTime   string // as written in the schedule, e.g. "2025-09-26 10:10"
	Resolution string
	Slots      [MaxSlots]Slot
}

// SubmissionRecord is one declared position, keyed by (DebateID, Stakeholder).
// A later submission for the same key replaces the earlier one.
type SubmissionRecord struct {
	DebateID    int
	Stakeholder string
	TeamName    string
	Position    Position
	SubmittedAt string // "2006-01-02 15:04:05 MST" in the configured timezone
}
