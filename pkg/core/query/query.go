// Package query derives per-slot visible state by composing the schedule,
// the reveal policy and the submission table. Everything here is a pure
// function of its inputs plus the supplied instant.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/reveal"
)

// LabelKind classifies what a viewer may see for one slot
type LabelKind string

const (
	// Empty means the slot has no assigned team
	Empty LabelKind = "empty"
	// ConfigError means the reveal instant could not be determined
	ConfigError LabelKind = "config_error"
	// Pending means the reveal instant has not passed; position withheld
	Pending LabelKind = "pending"
	// Revealed means the deadline passed and a submission exists
	Revealed LabelKind = "revealed"
	// NotSubmitted means the deadline passed with no submission on record
	NotSubmitted LabelKind = "not_submitted"
)

// Label is the visible state of one slot
type Label struct {
	Kind     LabelKind
	Position model.Position // set when Kind == Revealed
	RevealAt time.Time      // set when Kind == Pending
}

// String renders the label the way the schedule view displays it
func (l Label) String() string {
	switch l.Kind {
	case Empty:
		return "—"
	case ConfigError:
		return "CONFIG ERROR"
	case Pending:
		return fmt.Sprintf("Reveals %s", l.RevealAt.Format("Jan 02"))
	case Revealed:
		return string(l.Position)
	case NotSubmitted:
		return "Not Submitted"
	default:
		return string(l.Kind)
	}
}

// Key uniquely identifies a submission
type Key struct {
	DebateID    int
	Stakeholder string
}

// Index is a submission lookup by key. Later entries for the same key win,
// matching the store's upsert semantics.
type Index map[Key]model.SubmissionRecord

// NewIndex builds an Index from a submission table
func NewIndex(subs []model.SubmissionRecord) Index {
	idx := make(Index, len(subs))
	for _, sub := range subs {
		idx[Key{DebateID: sub.DebateID, Stakeholder: sub.Stakeholder}] = sub
	}
	return idx
}

// Get looks up the submission for (debateID, stakeholder)
func (idx Index) Get(debateID int, stakeholder string) (model.SubmissionRecord, bool) {
	sub, ok := idx[Key{DebateID: debateID, Stakeholder: stakeholder}]
	return sub, ok
}

// VisiblePosition computes the label for one slot of a debate at the given
// instant. Before the reveal instant the result is always Pending, never
// Revealed or NotSubmitted.
func VisiblePosition(rec model.DebateRecord, slotIdx int, subs Index, policy *reveal.Policy, now time.Time) Label {
	slot := rec.Slots[slotIdx]
	if slot.IsEmpty() {
		return Label{Kind: Empty}
	}

	instant, ok := policy.Instant(rec)
	if !ok {
		return Label{Kind: ConfigError}
	}

	if now.Before(instant) {
		return Label{Kind: Pending, RevealAt: instant}
	}

	if sub, ok := subs.Get(rec.ID, slot.Stakeholder); ok {
		return Label{Kind: Revealed, Position: sub.Position}
	}

	return Label{Kind: NotSubmitted}
}

// MissingSlot is a slot whose deadline passed with no submission on record
type MissingSlot struct {
	DebateID    int
	TeamName    string
	Stakeholder string
}

// MissingSubmissions lists every slot whose reveal instant has passed and
// that has no matching submission. Drives the instructor's manual override.
func MissingSubmissions(schedule []model.DebateRecord, subs Index, policy *reveal.Policy, now time.Time) []MissingSlot {
	missing := make([]MissingSlot, 0)
	for _, rec := range schedule {
		instant, ok := policy.Instant(rec)
		if !ok || now.Before(instant) {
			continue
		}

		for _, slot := range rec.Slots {
			if slot.IsEmpty() || slot.Stakeholder == "" {
				continue
			}
			if _, ok := subs.Get(rec.ID, slot.Stakeholder); !ok {
				missing = append(missing, MissingSlot{
					DebateID:    rec.ID,
					TeamName:    slot.Team,
					Stakeholder: slot.Stakeholder,
				})
			}
		}
	}
	return missing
}

// TeamDebate is one debate a team is assigned to, with the slot that names it
type TeamDebate struct {
	Record      model.DebateRecord
	SlotIndex   int
	Stakeholder string
}

// DebatesForTeam finds every slot assigned to the team. Matching is exact
// after trimming surrounding whitespace and ignoring case.
func DebatesForTeam(schedule []model.DebateRecord, teamName string) []TeamDebate {
	want := strings.TrimSpace(teamName)
	if want == "" {
		return nil
	}

	found := make([]TeamDebate, 0)
	for _, rec := range schedule {
		for i, slot := range rec.Slots {
			if strings.EqualFold(strings.TrimSpace(slot.Team), want) {
				found = append(found, TeamDebate{
					Record:      rec,
					SlotIndex:   i,
					Stakeholder: slot.Stakeholder,
				})
			}
		}
	}
	return found
}
