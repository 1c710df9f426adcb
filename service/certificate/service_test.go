package certificate

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/repository"
)

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type serviceTest struct {
	provider     *repository.ProviderMock
	eventRepo    *repository.EventMock
	userRepo     *repository.UserMock
	regRepo      *repository.RegistrationMock
	certRepo     *repository.CertificateMock
	templateRepo *repository.TemplateMock
	renderer     *RendererMock

	now time.Time
	svc *Service
}

func newServiceTest() *serviceTest {
	s := &serviceTest{
		provider:     &repository.ProviderMock{},
		eventRepo:    &repository.EventMock{},
		userRepo:     &repository.UserMock{},
		regRepo:      &repository.RegistrationMock{},
		certRepo:     &repository.CertificateMock{},
		templateRepo: &repository.TemplateMock{},
		renderer:     &RendererMock{},
		now:          newTime("2022-05-08T10:00:00Z"),
	}
	s.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	s.provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	s.svc = NewService(
		s.provider, s.eventRepo, s.userRepo, s.regRepo,
		s.certRepo, s.templateRepo, s.renderer,
	)
	s.svc.nowFn = func() time.Time { return s.now }
	s.svc.newUUID = func() string { return "4fe3a1c8-0000-0000-0000-000000000000" }
	return s
}

func (s *serviceTest) stubNoCertificate() {
	s.certRepo.FindCertificateFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullCertificate, error) {
		return model.NullCertificate{}, nil
	}
}

func (s *serviceTest) stubEvent(event model.Event) {
	s.eventRepo.FindEventFunc = func(ctx context.Context, eventID int64) (model.NullEvent, error) {
		return model.NullEvent{Valid: true, Event: event}, nil
	}
}

func (s *serviceTest) stubUser(user model.User) {
	s.userRepo.FindUserFunc = func(ctx context.Context, userID int64) (model.NullUser, error) {
		return model.NullUser{Valid: true, User: user}, nil
	}
}

func (s *serviceTest) stubRegistration(reg model.Registration) {
	s.regRepo.FindRegistrationByEventUserFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullRegistration, error) {
		return model.NullRegistration{Valid: true, Registration: reg}, nil
	}
}

func (s *serviceTest) stubTemplate(tpl model.CertificateTemplate) {
	s.templateRepo.FindDefaultTemplateFunc = func(ctx context.Context) (model.NullCertificateTemplate, error) {
		return model.NullCertificateTemplate{Valid: true, Template: tpl}, nil
	}
}

func (s *serviceTest) stubIssuable() {
	s.stubNoCertificate()
	s.stubEvent(model.Event{
		ID:        11,
		Title:     "Tech Conference",
		StartDate: newTime("2022-05-01T09:00:00Z"),
	})
	s.stubUser(model.User{ID: 21, Name: "Nguyen Van A"})
	s.stubRegistration(model.Registration{
		ID:       31,
		EventID:  11,
		UserID:   21,
		Status:   model.RegistrationStatusApproved,
		Attended: true,
	})
	s.stubTemplate(model.CertificateTemplate{ID: 41, Name: "Default", IsDefault: true})
	s.renderer.RenderFunc = func(ctx context.Context, input RenderInput) (string, error) {
		return "/certificates/" + input.CertificateNumber + ".html", nil
	}
	s.certRepo.InsertCertificateFunc = func(ctx context.Context, cert model.Certificate) (int64, error) {
		return 51, nil
	}
}

func TestService__Issue(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	result, err := s.svc.Issue(newContext(), 11, 21, model.UserActor(99))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.AlreadyIssued)

	cert := result.Certificate
	assert.Equal(t, int64(51), cert.ID)
	assert.Equal(t, int64(11), cert.EventID)
	assert.Equal(t, int64(21), cert.UserID)
	assert.Equal(t, int64(41), cert.TemplateID)
	assert.Equal(t, sql.NullInt64{Valid: true, Int64: 99}, cert.IssuedBy)
	assert.Equal(t, s.now, cert.IssuedAt)

	expectedNumber := fmt.Sprintf("CERT-11-21-%d-4fe3a1c8", s.now.UnixNano())
	assert.Equal(t, expectedNumber, cert.CertificateNumber)
	assert.Equal(t, "/certificates/"+expectedNumber+".html", cert.DownloadURL)

	renderInput := s.renderer.RenderCalls()[0].Input
	assert.Equal(t, "Nguyen Van A", renderInput.UserName)
	assert.Equal(t, "Tech Conference", renderInput.EventTitle)
	assert.Equal(t, newTime("2022-05-01T09:00:00Z"), renderInput.EventDate)
	assert.Equal(t, int64(41), renderInput.Template.ID)
}

func TestService__Issue__By_Env_Admin(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	result, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)
	assert.Equal(t, sql.NullInt64{}, result.Certificate.IssuedBy)
}

func TestService__Issue__Already_Issued(t *testing.T) {
	s := newServiceTest()
	existing := model.Certificate{
		ID:                51,
		EventID:           11,
		UserID:            21,
		CertificateNumber: "CERT-11-21-100-aaaaaaaa",
	}
	s.certRepo.FindCertificateFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullCertificate, error) {
		return model.NullCertificate{Valid: true, Certificate: existing}, nil
	}

	result, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.AlreadyIssued)
	assert.Equal(t, existing, result.Certificate)

	assert.Equal(t, 0, len(s.renderer.RenderCalls()))
	assert.Equal(t, 0, len(s.certRepo.InsertCertificateCalls()))
}

func TestService__Issue__Event_Not_Found(t *testing.T) {
	s := newServiceTest()
	s.stubNoCertificate()
	s.eventRepo.FindEventFunc = func(ctx context.Context, eventID int64) (model.NullEvent, error) {
		return model.NullEvent{}, nil
	}

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, ErrEventNotFound, err)
}

func TestService__Issue__Not_Attended(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()
	s.stubRegistration(model.Registration{
		ID:       31,
		EventID:  11,
		UserID:   21,
		Status:   model.RegistrationStatusApproved,
		Attended: false,
	})

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, ErrNotAttended, err)
	assert.Equal(t, 0, len(s.certRepo.InsertCertificateCalls()))
}

func TestService__Issue__No_Registration(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()
	s.regRepo.FindRegistrationByEventUserFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullRegistration, error) {
		return model.NullRegistration{}, nil
	}

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, ErrNotAttended, err)
}

func TestService__Issue__No_Template(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()
	s.templateRepo.FindDefaultTemplateFunc = func(ctx context.Context) (model.NullCertificateTemplate, error) {
		return model.NullCertificateTemplate{}, nil
	}

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, ErrNoTemplateAvailable, err)
}

func TestService__Issue__Lost_Insert_Race(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	winner := model.Certificate{
		ID:                52,
		EventID:           11,
		UserID:            21,
		CertificateNumber: "CERT-11-21-200-bbbbbbbb",
	}
	// the pre-check misses, only the locking re-fetch after the failed
	// insert observes the winner's committed row
	s.certRepo.FindCertificateFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullCertificate, error) {
		return model.NullCertificate{}, nil
	}
	s.certRepo.LockCertificateFunc = func(
		ctx context.Context, eventID int64, userID int64,
	) (model.NullCertificate, error) {
		return model.NullCertificate{Valid: true, Certificate: winner}, nil
	}
	s.certRepo.InsertCertificateFunc = func(ctx context.Context, cert model.Certificate) (int64, error) {
		return 0, repository.ErrDuplicateEntry
	}

	result, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.AlreadyIssued)
	assert.Equal(t, winner, result.Certificate)
	assert.Equal(t, 1, len(s.certRepo.LockCertificateCalls()))
}

func TestService__Issue__Template_Cached(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)

	s.stubNoCertificate()
	_, err = s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(s.templateRepo.FindDefaultTemplateCalls()))
}

func TestService__CreateTemplate__Invalidates_Cache(t *testing.T) {
	s := newServiceTest()
	s.stubIssuable()

	_, err := s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)

	s.templateRepo.InsertTemplateFunc = func(ctx context.Context, tpl model.CertificateTemplate) (int64, error) {
		return 42, nil
	}
	tpl, err := s.svc.CreateTemplate(newContext(), TemplateInput{
		Name:      "New Default",
		IsDefault: true,
	}, model.UserActor(99))
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(42), tpl.ID)
	assert.Equal(t, model.TemplateDesignModern, tpl.Design)

	s.stubNoCertificate()
	_, err = s.svc.Issue(newContext(), 11, 21, model.EnvAdmin())
	assert.Equal(t, nil, err)

	assert.Equal(t, 2, len(s.templateRepo.FindDefaultTemplateCalls()))
}

func TestService__DeleteTemplate__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.templateRepo.DeleteTemplateFunc = func(ctx context.Context, templateID int64) (int64, error) {
		return 0, nil
	}

	err := s.svc.DeleteTemplate(newContext(), 41)
	assert.Equal(t, ErrTemplateNotFound, err)
}

func TestService__GetCertificate__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.stubNoCertificate()

	_, err := s.svc.GetCertificate(newContext(), 11, 21)
	assert.Equal(t, ErrCertificateNotFound, err)
}

func newContext() context.Context {
	return context.Background()
}
