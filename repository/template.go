package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/eventcore/model"
)

// Template ...
type Template interface {
	FindTemplate(ctx context.Context, templateID int64) (model.NullCertificateTemplate, error)
	FindTemplates(ctx context.Context) ([]model.CertificateTemplate, error)

	// FindDefaultTemplate returns the template flagged default, falling
	// back to the oldest template when none is flagged.
	FindDefaultTemplate(ctx context.Context) (model.NullCertificateTemplate, error)

	InsertTemplate(ctx context.Context, tpl model.CertificateTemplate) (int64, error)
	DeleteTemplate(ctx context.Context, templateID int64) (int64, error)
}

type templateImpl struct {
}

// NewTemplate ...
func NewTemplate() Template {
	return &templateImpl{}
}

const templateColumns = `
id, name, design, background_color, text_color, is_default,
created_by, created_at, updated_at
`

func (t *templateImpl) findOne(
	ctx context.Context, query string, args ...interface{},
) (model.NullCertificateTemplate, error) {
	var result model.CertificateTemplate
	err := getQuerier(ctx).GetContext(ctx, &result, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCertificateTemplate{}, nil
	}
	if err != nil {
		return model.NullCertificateTemplate{}, err
	}
	return model.NullCertificateTemplate{Valid: true, Template: result}, nil
}

// FindTemplate ...
func (t *templateImpl) FindTemplate(
	ctx context.Context, templateID int64,
) (model.NullCertificateTemplate, error) {
	query := `SELECT` + templateColumns + `FROM certificate_template WHERE id = ?`
	return t.findOne(ctx, query, templateID)
}

// FindTemplates ...
func (t *templateImpl) FindTemplates(ctx context.Context) ([]model.CertificateTemplate, error) {
	query := `SELECT` + templateColumns + `FROM certificate_template ORDER BY id`

	var result []model.CertificateTemplate
	err := getQuerier(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// FindDefaultTemplate ...
func (t *templateImpl) FindDefaultTemplate(
	ctx context.Context,
) (model.NullCertificateTemplate, error) {
	query := `SELECT` + templateColumns + `
FROM certificate_template
ORDER BY is_default DESC, id ASC
LIMIT 1
`
	return t.findOne(ctx, query)
}

// InsertTemplate ...
func (t *templateImpl) InsertTemplate(
	ctx context.Context, tpl model.CertificateTemplate,
) (int64, error) {
	query := `
INSERT INTO certificate_template (
	name, design, background_color, text_color, is_default, created_by
) VALUES (
	:name, :design, :background_color, :text_color, :is_default, :created_by
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, tpl)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteTemplate ...
func (t *templateImpl) DeleteTemplate(ctx context.Context, templateID int64) (int64, error) {
	query := `DELETE FROM certificate_template WHERE id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, templateID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
