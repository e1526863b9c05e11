package store

import (
	"strconv"
	"strings"

	"github.com/courseops/debate-signup/pkg/core/model"
)

// ScheduleRow mirrors one row of the schedule file. Field order matches the
// published column order of the sheet the instructor exports.
type ScheduleRow struct {
	Debate       string `csv:"Debate"`
	DateTime     string `csv:"Date and Time"`
	Resolution   string `csv:"Resolution"`
	Stakeholder1 string `csv:"Stakeholder 1"`
	Team1        string `csv:"Team 1"`
	Stakeholder2 string `csv:"Stakeholder 2"`
	Team2        string `csv:"Team 2"`
	Stakeholder3 string `csv:"Stakeholder 3"`
	Team3        string `csv:"Team 3"`
	Stakeholder4 string `csv:"Stakeholder 4"`
	Team4        string `csv:"Team 4"`
}

// ToRecord converts a raw schedule row into a DebateRecord. Parsing is
// tolerant: a non-numeric debate number becomes 0 and malformed dates pass
// through untouched, surfacing later as CONFIG ERROR labels rather than a
// fatal parse error.
func (r ScheduleRow) ToRecord() model.DebateRecord {
	id, _ := strconv.Atoi(strings.TrimSpace(r.Debate))

	return model.DebateRecord{
		ID:         id,
		DateTime:   r.DateTime,
		Resolution: r.Resolution,
		Slots: [model.MaxSlots]model.Slot{
			{Team: r.Team1, Stakeholder: r.Stakeholder1},
			{Team: r.Team2, Stakeholder: r.Stakeholder2},
			{Team: r.Team3, Stakeholder: r.Stakeholder3},
			{Team: r.Team4, Stakeholder: r.Stakeholder4},
		},
	}
}

// SubmissionRow mirrors one row of the submissions file. The header is fixed:
// Debate Number, Stakeholder, Team Name, Position, Submission Time.
type SubmissionRow struct {
	DebateNumber   int    `csv:"Debate Number"`
	Stakeholder    string `csv:"Stakeholder"`
	TeamName       string `csv:"Team Name"`
	Position       string `csv:"Position"`
	SubmissionTime string `csv:"Submission Time"`
}

// ToRecord converts a raw submission row into a SubmissionRecord
func (r SubmissionRow) ToRecord() model.SubmissionRecord {
	return model.SubmissionRecord{
		DebateID:    r.DebateNumber,
		Stakeholder: r.Stakeholder,
		TeamName:    r.TeamName,
		Position:    model.Position(r.Position),
		SubmittedAt: r.SubmissionTime,
	}
}

func rowFromRecord(rec model.SubmissionRecord) SubmissionRow {
	return SubmissionRow{
		DebateNumber:   rec.DebateID,
		Stakeholder:    rec.Stakeholder,
		TeamName:       rec.TeamName,
		Position:       string(rec.Position),
		SubmissionTime: rec.SubmittedAt,
	}
}
