package models

import "time"

// Event is one entry in the campus schedule.
type Event struct {
	ID        string
	Title     string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedBy string
	CreatedAt time.Time
}
