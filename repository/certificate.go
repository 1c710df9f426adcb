package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/eventcore/model"
)

// Certificate ...
type Certificate interface {
	FindCertificate(ctx context.Context, eventID int64, userID int64) (model.NullCertificate, error)

	// LockCertificate finds a certificate with SELECT FOR UPDATE. The
	// locking read waits for a concurrent inserter holding the row lock
	// and then sees its committed row, where a plain read inside the
	// same transaction would still be served from the start snapshot.
	LockCertificate(ctx context.Context, eventID int64, userID int64) (model.NullCertificate, error)
	FindCertificatesByEvent(ctx context.Context, eventID int64) ([]model.Certificate, error)
	FindCertificatesByUser(ctx context.Context, userID int64) ([]model.Certificate, error)

	// InsertCertificate returns ErrDuplicateEntry when a certificate
	// already exists for the (event, user) pair. Concurrent issuers race
	// to this insert, the loser re-fetches the winner's record.
	InsertCertificate(ctx context.Context, cert model.Certificate) (int64, error)

	DeleteCertificate(ctx context.Context, certificateID int64) (int64, error)
	DeleteCertificatesByEvent(ctx context.Context, eventID int64) error
}

type certificateImpl struct {
}

// NewCertificate ...
func NewCertificate() Certificate {
	return &certificateImpl{}
}

const certificateColumns = `
id, event_id, user_id, template_id, certificate_number,
issued_at, issued_by, download_url, created_at, updated_at
`

// FindCertificate ...
func (c *certificateImpl) FindCertificate(
	ctx context.Context, eventID int64, userID int64,
) (model.NullCertificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificate WHERE event_id = ? AND user_id = ?`

	var result model.Certificate
	err := getQuerier(ctx).GetContext(ctx, &result, query, eventID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCertificate{}, nil
	}
	if err != nil {
		return model.NullCertificate{}, err
	}
	return model.NullCertificate{Valid: true, Certificate: result}, nil
}

// LockCertificate ...
func (c *certificateImpl) LockCertificate(
	ctx context.Context, eventID int64, userID int64,
) (model.NullCertificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificate WHERE event_id = ? AND user_id = ? FOR UPDATE`

	var result model.Certificate
	err := GetTx(ctx).GetContext(ctx, &result, query, eventID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCertificate{}, nil
	}
	if err != nil {
		return model.NullCertificate{}, err
	}
	return model.NullCertificate{Valid: true, Certificate: result}, nil
}

// FindCertificatesByEvent ...
func (c *certificateImpl) FindCertificatesByEvent(
	ctx context.Context, eventID int64,
) ([]model.Certificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificate WHERE event_id = ? ORDER BY id`

	var result []model.Certificate
	err := getQuerier(ctx).SelectContext(ctx, &result, query, eventID)
	return result, err
}

// FindCertificatesByUser ...
func (c *certificateImpl) FindCertificatesByUser(
	ctx context.Context, userID int64,
) ([]model.Certificate, error) {
	query := `SELECT` + certificateColumns + `FROM certificate WHERE user_id = ? ORDER BY id`

	var result []model.Certificate
	err := getQuerier(ctx).SelectContext(ctx, &result, query, userID)
	return result, err
}

// InsertCertificate ...
func (c *certificateImpl) InsertCertificate(
	ctx context.Context, cert model.Certificate,
) (int64, error) {
	query := `
INSERT INTO certificate (
	event_id, user_id, template_id, certificate_number,
	issued_at, issued_by, download_url
) VALUES (
	:event_id, :user_id, :template_id, :certificate_number,
	:issued_at, :issued_by, :download_url
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, cert)
	if err != nil {
		return 0, wrapInsertError(err)
	}
	return result.LastInsertId()
}

// DeleteCertificate ...
func (c *certificateImpl) DeleteCertificate(
	ctx context.Context, certificateID int64,
) (int64, error) {
	query := `DELETE FROM certificate WHERE id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, certificateID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteCertificatesByEvent ...
func (c *certificateImpl) DeleteCertificatesByEvent(ctx context.Context, eventID int64) error {
	query := `DELETE FROM certificate WHERE event_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, eventID)
	return err
}
