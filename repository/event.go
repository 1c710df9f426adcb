package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/eventcore/model"
)

// Event ...
type Event interface {
	FindEvent(ctx context.Context, eventID int64) (model.NullEvent, error)
	FindEvents(ctx context.Context) ([]model.Event, error)

	// LockEvent locks the event row for the enclosing transaction. All
	// ledger mutations for one event serialize on this lock.
	LockEvent(ctx context.Context, eventID int64) (model.NullEvent, error)

	InsertEvent(ctx context.Context, event model.Event) (int64, error)
	UpdateRegisteredCount(ctx context.Context, eventID int64, count int64) error
	DeleteEvent(ctx context.Context, eventID int64) (int64, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

const eventColumns = `
id, title, description, start_date, end_date,
max_participants, registered_count, status, requires_approval,
created_by, created_at, updated_at
`

// FindEvent ...
func (e *eventImpl) FindEvent(ctx context.Context, eventID int64) (model.NullEvent, error) {
	query := `SELECT` + eventColumns + `FROM event WHERE id = ?`

	var result model.Event
	err := getQuerier(ctx).GetContext(ctx, &result, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullEvent{}, nil
	}
	if err != nil {
		return model.NullEvent{}, err
	}
	return model.NullEvent{Valid: true, Event: result}, nil
}

// FindEvents ...
func (e *eventImpl) FindEvents(ctx context.Context) ([]model.Event, error) {
	query := `SELECT` + eventColumns + `FROM event ORDER BY start_date DESC`

	var result []model.Event
	err := getQuerier(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// LockEvent ...
func (e *eventImpl) LockEvent(ctx context.Context, eventID int64) (model.NullEvent, error) {
	query := `SELECT` + eventColumns + `FROM event WHERE id = ? FOR UPDATE`

	var result model.Event
	err := GetTx(ctx).GetContext(ctx, &result, query, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullEvent{}, nil
	}
	if err != nil {
		return model.NullEvent{}, err
	}
	return model.NullEvent{Valid: true, Event: result}, nil
}

// InsertEvent ...
func (e *eventImpl) InsertEvent(ctx context.Context, event model.Event) (int64, error) {
	query := `
INSERT INTO event (
	title, description, start_date, end_date,
	max_participants, registered_count, status, requires_approval,
	created_by
) VALUES (
	:title, :description, :start_date, :end_date,
	:max_participants, :registered_count, :status, :requires_approval,
	:created_by
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateRegisteredCount ...
func (e *eventImpl) UpdateRegisteredCount(ctx context.Context, eventID int64, count int64) error {
	query := `UPDATE event SET registered_count = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, count, eventID)
	return err
}

// DeleteEvent ...
func (e *eventImpl) DeleteEvent(ctx context.Context, eventID int64) (int64, error) {
	query := `DELETE FROM event WHERE id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, eventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
