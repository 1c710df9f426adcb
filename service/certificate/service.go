package certificate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/monitoring"
	"github.com/campushub/eventcore/repository"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -rm -out service_mocks.go . Renderer

// IService issues certificates for attended event registrations.
// Issuance is idempotent per (event, user): the unique constraint on the
// certificate table decides the winner of concurrent attempts and every
// other caller receives the winner's certificate.
type IService interface {
	Issue(ctx context.Context, eventID int64, userID int64, issuedBy model.Actor) (IssueResult, error)
	BulkIssue(ctx context.Context, eventID int64, issuedBy model.Actor) (BulkResult, error)

	GetCertificate(ctx context.Context, eventID int64, userID int64) (model.Certificate, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Certificate, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Certificate, error)

	CreateTemplate(ctx context.Context, input TemplateInput, actor model.Actor) (model.CertificateTemplate, error)
	ListTemplates(ctx context.Context) ([]model.CertificateTemplate, error)
	DeleteTemplate(ctx context.Context, templateID int64) error
}

// IssueResult ...
type IssueResult struct {
	Certificate model.Certificate

	// AlreadyIssued reports that the certificate existed before this
	// call, either from an earlier request or from a concurrent winner.
	AlreadyIssued bool
}

// RenderInput ...
type RenderInput struct {
	CertificateNumber string
	UserName          string
	EventTitle        string
	EventDate         time.Time
	IssuedDate        time.Time
	Template          model.CertificateTemplate
}

// Renderer writes the downloadable certificate artifact and returns its
// download URL.
type Renderer interface {
	Render(ctx context.Context, input RenderInput) (string, error)
}

// ErrEventNotFound ...
var ErrEventNotFound = errors.New("event not found")

// ErrUserNotFound ...
var ErrUserNotFound = errors.New("user not found")

// ErrNotAttended ...
var ErrNotAttended = errors.New("user did not attend this event")

// ErrNoTemplateAvailable ...
var ErrNoTemplateAvailable = errors.New("no certificate template available")

// ErrCertificateNotFound ...
var ErrCertificateNotFound = errors.New("certificate not found")

// ErrTemplateNotFound ...
var ErrTemplateNotFound = errors.New("certificate template not found")

const defaultTemplateCacheSize = 1 << 20

// Service ...
type Service struct {
	provider     repository.Provider
	eventRepo    repository.Event
	userRepo     repository.User
	regRepo      repository.Registration
	certRepo     repository.Certificate
	templateRepo repository.Template
	renderer     Renderer

	templateCache *freecache.Cache
	nowFn         func() time.Time
	newUUID       func() string
}

// NewService ...
func NewService(
	provider repository.Provider,
	eventRepo repository.Event,
	userRepo repository.User,
	regRepo repository.Registration,
	certRepo repository.Certificate,
	templateRepo repository.Template,
	renderer Renderer,
) *Service {
	return &Service{
		provider:     provider,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		regRepo:      regRepo,
		certRepo:     certRepo,
		templateRepo: templateRepo,
		renderer:     renderer,

		templateCache: freecache.NewCache(defaultTemplateCacheSize),
		nowFn:         time.Now,
		newUUID:       uuid.NewString,
	}
}

// certificateNumber builds a globally unique certificate number. The
// timestamp and uuid fragment keep retries from colliding on the unique
// certificate_number index.
func (s *Service) certificateNumber(eventID int64, userID int64, now time.Time) string {
	return fmt.Sprintf("CERT-%d-%d-%d-%s", eventID, userID, now.UnixNano(), s.newUUID()[:8])
}

// Issue ...
func (s *Service) Issue(
	ctx context.Context, eventID int64, userID int64, issuedBy model.Actor,
) (IssueResult, error) {
	var result IssueResult

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullCert, err := s.certRepo.FindCertificate(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if nullCert.Valid {
			result = IssueResult{Certificate: nullCert.Certificate, AlreadyIssued: true}
			return nil
		}

		nullEvent, err := s.eventRepo.FindEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if !nullEvent.Valid {
			return ErrEventNotFound
		}

		nullUser, err := s.userRepo.FindUser(ctx, userID)
		if err != nil {
			return err
		}
		if !nullUser.Valid {
			return ErrUserNotFound
		}

		nullReg, err := s.regRepo.FindRegistrationByEventUser(ctx, eventID, userID)
		if err != nil {
			return err
		}
		if !nullReg.Valid || !nullReg.Registration.Attended {
			return ErrNotAttended
		}

		tpl, err := s.defaultTemplate(ctx)
		if err != nil {
			return err
		}

		now := s.nowFn()
		cert := model.Certificate{
			EventID:           eventID,
			UserID:            userID,
			TemplateID:        tpl.ID,
			CertificateNumber: s.certificateNumber(eventID, userID, now),
			IssuedAt:          now,
			IssuedBy:          issuedBy.NullUserID(),
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		cert.DownloadURL, err = s.renderer.Render(ctx, RenderInput{
			CertificateNumber: cert.CertificateNumber,
			UserName:          nullUser.User.Name,
			EventTitle:        nullEvent.Event.Title,
			EventDate:         nullEvent.Event.StartDate,
			IssuedDate:        now,
			Template:          tpl,
		})
		if err != nil {
			return err
		}

		id, err := s.certRepo.InsertCertificate(ctx, cert)
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// a concurrent issuer won the insert race. The locking read
			// waits for the winner's commit, a plain read would miss the
			// row on this transaction's snapshot.
			winner, findErr := s.certRepo.LockCertificate(ctx, eventID, userID)
			if findErr != nil {
				return findErr
			}
			if !winner.Valid {
				return err
			}
			result = IssueResult{Certificate: winner.Certificate, AlreadyIssued: true}
			return nil
		}
		if err != nil {
			return err
		}

		cert.ID = id
		result = IssueResult{Certificate: cert}
		return nil
	})

	monitoring.CertificateIssuance.WithLabelValues(issueResultLabel(result, err)).Inc()
	if err != nil {
		return IssueResult{}, err
	}
	return result, nil
}

func issueResultLabel(result IssueResult, err error) string {
	switch {
	case err != nil:
		return "error"
	case result.AlreadyIssued:
		return "already_issued"
	default:
		return "issued"
	}
}

// GetCertificate ...
func (s *Service) GetCertificate(
	ctx context.Context, eventID int64, userID int64,
) (model.Certificate, error) {
	ctx = s.provider.Readonly(ctx)
	nullCert, err := s.certRepo.FindCertificate(ctx, eventID, userID)
	if err != nil {
		return model.Certificate{}, err
	}
	if !nullCert.Valid {
		return model.Certificate{}, ErrCertificateNotFound
	}
	return nullCert.Certificate, nil
}

// ListByEvent ...
func (s *Service) ListByEvent(ctx context.Context, eventID int64) ([]model.Certificate, error) {
	ctx = s.provider.Readonly(ctx)
	return s.certRepo.FindCertificatesByEvent(ctx, eventID)
}

// ListByUser ...
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]model.Certificate, error) {
	ctx = s.provider.Readonly(ctx)
	return s.certRepo.FindCertificatesByUser(ctx, userID)
}
