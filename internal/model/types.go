// Package model defines shared data structures.
package model

import "time"

// Config defines shuffle settings.
type Config struct {
	InputPath  string
	OutputPath string
	Strict     bool
	Record     bool
}

// Status classifies how a shuffle attempt ended.
type Status string

const (
	StatusOK            Status = "ok"
	StatusInputNotFound Status = "input_not_found"
	StatusIOFailure     Status = "io_failure"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusOK, StatusInputNotFound, StatusIOFailure}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// RunRecord captures a single shuffle attempt.
type RunRecord struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	InputPath  string
	OutputPath string
	Lines      int
	Status     Status
	Message    string
	DurationMs int64
}

// HistoryConfig defines filters for listing runs.
type HistoryConfig struct {
	Status Status
	Limit  int
}
