package models

import "time"

// EventStatus tracks an event through its lifecycle.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Event is a scheduled happening at the venue (tastings, live music, ...).
type Event struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	Capacity    int         `json:"capacity"`
	TicketPrice float64     `json:"ticketPrice"`
	TicketsSold int         `json:"ticketsSold"`
	Category    string      `json:"category"`
	Status      EventStatus `json:"status"`
	Organizer   string      `json:"organizer"`
	Attendees   []string    `json:"attendees"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// RecordID implements repositories.Record.
func (e Event) RecordID() string { return e.ID }
