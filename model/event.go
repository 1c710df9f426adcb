package model

import (
	"database/sql"
	"time"
)

// Event ...
type Event struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`

	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	MaxParticipants int64 `db:"max_participants" json:"maxParticipants"`

	// RegisteredCount is derived from the registration table, it is only
	// ever written by the ledger's recount, never incremented in place.
	RegisteredCount int64 `db:"registered_count" json:"registeredCount"`

	Status           EventStatus `db:"status" json:"status"`
	RequiresApproval bool        `db:"requires_approval" json:"requiresApproval"`

	CreatedBy sql.NullInt64 `db:"created_by" json:"createdBy"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullEvent ...
type NullEvent struct {
	Valid bool
	Event Event
}

// EventStatus ...
type EventStatus int

const (
	// EventStatusDraft ...
	EventStatusDraft EventStatus = 1

	// EventStatusPublished ...
	EventStatusPublished EventStatus = 2

	// EventStatusOngoing ...
	EventStatusOngoing EventStatus = 3

	// EventStatusCompleted ...
	EventStatusCompleted EventStatus = 4

	// EventStatusCancelled ...
	EventStatusCancelled EventStatus = 5
)
