package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/eventcore/model"
)

// Registration ...
type Registration interface {
	FindRegistration(ctx context.Context, registrationID int64) (model.NullRegistration, error)

	// LockRegistration finds a registration with SELECT FOR UPDATE. A
	// locking read sees the latest committed row even when the
	// transaction snapshot predates it, so mutations always start from
	// current data.
	LockRegistration(ctx context.Context, registrationID int64) (model.NullRegistration, error)

	FindRegistrationByEventUser(ctx context.Context, eventID int64, userID int64) (model.NullRegistration, error)
	FindRegistrationsByEvent(ctx context.Context, eventID int64) ([]model.Registration, error)
	FindAttendedRegistrations(ctx context.Context, eventID int64) ([]model.Registration, error)

	// InsertRegistration returns ErrDuplicateEntry when a registration
	// already exists for the (event, user) pair.
	InsertRegistration(ctx context.Context, reg model.Registration) (int64, error)

	UpdateRegistrationStatus(ctx context.Context, reg model.Registration) error
	UpdateRegistrationAttendance(ctx context.Context, reg model.Registration) error

	DeleteRegistration(ctx context.Context, registrationID int64) (int64, error)
	DeleteRegistrationsByEvent(ctx context.Context, eventID int64) error

	// CountApprovedRegistrations counts with a locking read. Must run
	// inside a transaction, after the event row lock, so the count
	// includes approvals committed after the transaction started.
	CountApprovedRegistrations(ctx context.Context, eventID int64) (int64, error)
}

type registrationImpl struct {
}

// NewRegistration ...
func NewRegistration() Registration {
	return &registrationImpl{}
}

const registrationColumns = `
id, event_id, user_id, status, form_data,
approved_by, approved_at,
attended, attendance_marked_by, attendance_marked_at,
created_at, updated_at
`

func (r *registrationImpl) findOne(
	ctx context.Context, query string, args ...interface{},
) (model.NullRegistration, error) {
	var result model.Registration
	err := getQuerier(ctx).GetContext(ctx, &result, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullRegistration{}, nil
	}
	if err != nil {
		return model.NullRegistration{}, err
	}
	return model.NullRegistration{Valid: true, Registration: result}, nil
}

// FindRegistration ...
func (r *registrationImpl) FindRegistration(
	ctx context.Context, registrationID int64,
) (model.NullRegistration, error) {
	query := `SELECT` + registrationColumns + `FROM registration WHERE id = ?`
	return r.findOne(ctx, query, registrationID)
}

// LockRegistration ...
func (r *registrationImpl) LockRegistration(
	ctx context.Context, registrationID int64,
) (model.NullRegistration, error) {
	query := `SELECT` + registrationColumns + `FROM registration WHERE id = ? FOR UPDATE`

	var result model.Registration
	err := GetTx(ctx).GetContext(ctx, &result, query, registrationID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullRegistration{}, nil
	}
	if err != nil {
		return model.NullRegistration{}, err
	}
	return model.NullRegistration{Valid: true, Registration: result}, nil
}

// FindRegistrationByEventUser ...
func (r *registrationImpl) FindRegistrationByEventUser(
	ctx context.Context, eventID int64, userID int64,
) (model.NullRegistration, error) {
	query := `SELECT` + registrationColumns + `FROM registration WHERE event_id = ? AND user_id = ?`
	return r.findOne(ctx, query, eventID, userID)
}

// FindRegistrationsByEvent ...
func (r *registrationImpl) FindRegistrationsByEvent(
	ctx context.Context, eventID int64,
) ([]model.Registration, error) {
	query := `SELECT` + registrationColumns + `FROM registration WHERE event_id = ? ORDER BY id`

	var result []model.Registration
	err := getQuerier(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// FindAttendedRegistrations ...
func (r *registrationImpl) FindAttendedRegistrations(
	ctx context.Context, eventID int64,
) ([]model.Registration, error) {
	query := `SELECT` + registrationColumns + `FROM registration WHERE event_id = ? AND attended = TRUE ORDER BY id`

	var result []model.Registration
	err := getQuerier(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// InsertRegistration ...
func (r *registrationImpl) InsertRegistration(
	ctx context.Context, reg model.Registration,
) (int64, error) {
	query := `
INSERT INTO registration (
	event_id, user_id, status, form_data,
	approved_by, approved_at
) VALUES (
	:event_id, :user_id, :status, :form_data,
	:approved_by, :approved_at
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, reg)
	if err != nil {
		return 0, wrapInsertError(err)
	}
	return result.LastInsertId()
}

// UpdateRegistrationStatus ...
func (r *registrationImpl) UpdateRegistrationStatus(
	ctx context.Context, reg model.Registration,
) error {
	query := `
UPDATE registration
SET status = :status, approved_by = :approved_by, approved_at = :approved_at
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, reg)
	return err
}

// UpdateRegistrationAttendance ...
func (r *registrationImpl) UpdateRegistrationAttendance(
	ctx context.Context, reg model.Registration,
) error {
	query := `
UPDATE registration
SET attended = :attended,
	attendance_marked_by = :attendance_marked_by,
	attendance_marked_at = :attendance_marked_at
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, reg)
	return err
}

// DeleteRegistration ...
func (r *registrationImpl) DeleteRegistration(
	ctx context.Context, registrationID int64,
) (int64, error) {
	query := `DELETE FROM registration WHERE id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, registrationID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteRegistrationsByEvent ...
func (r *registrationImpl) DeleteRegistrationsByEvent(ctx context.Context, eventID int64) error {
	query := `DELETE FROM registration WHERE event_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, eventID)
	return err
}

// CountApprovedRegistrations ...
func (r *registrationImpl) CountApprovedRegistrations(
	ctx context.Context, eventID int64,
) (int64, error) {
	query := `SELECT COUNT(*) FROM registration WHERE event_id = ? AND status = ? FOR UPDATE`

	var count int64
	err := GetTx(ctx).GetContext(ctx, &count, query, eventID, model.RegistrationStatusApproved)
	return count, err
}
