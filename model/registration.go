package model

import (
	"database/sql"
	"time"
)

// Registration ...
type Registration struct {
	ID      int64 `db:"id" json:"id"`
	EventID int64 `db:"event_id" json:"eventId"`
	UserID  int64 `db:"user_id" json:"userId"`

	Status RegistrationStatus `db:"status" json:"status"`

	// FormData holds the submitted registration form as raw JSON.
	FormData []byte `db:"form_data" json:"formData"`

	ApprovedBy sql.NullInt64 `db:"approved_by" json:"approvedBy"`
	ApprovedAt sql.NullTime  `db:"approved_at" json:"approvedAt"`

	Attended           bool          `db:"attended" json:"attended"`
	AttendanceMarkedBy sql.NullInt64 `db:"attendance_marked_by" json:"attendanceMarkedBy"`
	AttendanceMarkedAt sql.NullTime  `db:"attendance_marked_at" json:"attendanceMarkedAt"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullRegistration ...
type NullRegistration struct {
	Valid        bool
	Registration Registration
}

// RegistrationStatus ...
type RegistrationStatus int

const (
	// RegistrationStatusPending ...
	RegistrationStatusPending RegistrationStatus = 1

	// RegistrationStatusApproved ...
	RegistrationStatusApproved RegistrationStatus = 2

	// RegistrationStatusRejected ...
	RegistrationStatusRejected RegistrationStatus = 3
)
