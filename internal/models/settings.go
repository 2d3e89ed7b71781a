package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Setting keys used by the timetable configuration endpoints.
const (
	SettingKeyTimeSlots = "time_slots"
)

// Setting is a persisted key/value configuration entry with a JSON value.
type Setting struct {
	Key       string         `db:"key" json:"key"`
	Value     types.JSONText `db:"value" json:"value"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// TimeSlotConfig is one entry of the time_slots setting: the wall-clock
// window for a period number. Period 5 is lunch.
type TimeSlotConfig struct {
	Slot  int    `json:"slot"`
	Start string `json:"start"`
	End   string `json:"end"`
}
