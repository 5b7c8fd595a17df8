package domain

import "time"

// Task is a to-do item on the Daily Ops tab.
type Task struct {
	Meta
	Title    string     `json:"title"`
	Status   TaskStatus `json:"status"`
	Priority string     `json:"priority,omitempty"`
}

// Client is an active business relationship.
type Client struct {
	Meta
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Prospect is a sales-pipeline lead.
type Prospect struct {
	Meta
	Name       string        `json:"name"`
	Stage      ProspectStage `json:"stage"`
	NextAction string        `json:"next_action,omitempty"`
}

// Project is a build-in-progress with a completion percentage.
type Project struct {
	Meta
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// Idea is a captured experiment or product idea.
type Idea struct {
	Meta
	Title  string `json:"title"`
	Status string `json:"status"`
}

// WeeklyReview is a retrospective note tagged with a derived week number.
type WeeklyReview struct {
	Meta
	Title string `json:"title"`
	Week  int    `json:"week"`
	Wins  string `json:"wins,omitempty"`
	Focus string `json:"focus,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Checkin is a daily energy/focus self-report. The store-assigned createdAt
// doubles as the check-in timestamp; Date is the calendar day it belongs to.
type Checkin struct {
	Meta
	Date   string `json:"date"`
	Energy int    `json:"energy"`
	Focus  int    `json:"focus"`
}

// TokenLog records the cost of one AI API call plus whatever metadata the
// caller attaches. Token logging is the one mutation that does not feed the
// activity trail.
type TokenLog struct {
	Meta
	Cost     float64        `json:"cost"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// WeekNumber returns the zero-based week-of-year bucket used to tag weekly
// reviews: whole weeks elapsed since January 1st. Not ISO 8601 on purpose;
// the dashboard groups by this value.
func WeekNumber(t time.Time) int {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return int(t.Sub(start) / (7 * 24 * time.Hour))
}

// DateStamp formats a time as the YYYY-MM-DD key used for check-in dates and
// daily memory filenames.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
