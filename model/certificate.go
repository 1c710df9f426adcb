package model

import (
	"database/sql"
	"time"
)

// Certificate ...
type Certificate struct {
	ID         int64 `db:"id" json:"id"`
	EventID    int64 `db:"event_id" json:"eventId"`
	UserID     int64 `db:"user_id" json:"userId"`
	TemplateID int64 `db:"template_id" json:"templateId"`

	CertificateNumber string `db:"certificate_number" json:"certificateNumber"`

	IssuedAt time.Time `db:"issued_at" json:"issuedAt"`

	// IssuedBy is NULL when the certificate was issued by the
	// environment admin, which has no persisted user row.
	IssuedBy sql.NullInt64 `db:"issued_by" json:"issuedBy"`

	DownloadURL string `db:"download_url" json:"downloadUrl"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullCertificate ...
type NullCertificate struct {
	Valid       bool
	Certificate Certificate
}

// CertificateTemplate ...
type CertificateTemplate struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`

	Design          TemplateDesign `db:"design" json:"design"`
	BackgroundColor string         `db:"background_color" json:"backgroundColor"`
	TextColor       string         `db:"text_color" json:"textColor"`

	IsDefault bool `db:"is_default" json:"isDefault"`

	CreatedBy sql.NullInt64 `db:"created_by" json:"createdBy"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NullCertificateTemplate ...
type NullCertificateTemplate struct {
	Valid    bool
	Template CertificateTemplate
}

// TemplateDesign ...
type TemplateDesign int

const (
	// TemplateDesignModern ...
	TemplateDesignModern TemplateDesign = 1

	// TemplateDesignClassic ...
	TemplateDesignClassic TemplateDesign = 2

	// TemplateDesignElegant ...
	TemplateDesignElegant TemplateDesign = 3

	// TemplateDesignCorporate ...
	TemplateDesignCorporate TemplateDesign = 4
)
