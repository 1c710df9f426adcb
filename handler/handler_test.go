package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/service/certificate"
	"github.com/campushub/eventcore/service/ledger"
)

type ledgerStub struct {
	createEvent    func(ctx context.Context, input ledger.EventInput, actor model.Actor) (model.Event, error)
	getEvent       func(ctx context.Context, eventID int64) (model.Event, error)
	listEvents     func(ctx context.Context) ([]model.Event, error)
	deleteEvent    func(ctx context.Context, eventID int64) error
	register       func(ctx context.Context, eventID int64, userID int64, formData []byte) (model.Registration, error)
	updateStatus   func(ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor) (model.Registration, error)
	markAttendance func(ctx context.Context, registrationID int64, attended bool, actor model.Actor) (model.Registration, error)
	unregister     func(ctx context.Context, registrationID int64) error
	listRegs       func(ctx context.Context, eventID int64) ([]model.Registration, error)
	recount        func(ctx context.Context, eventID int64) (int64, error)
}

var _ ledger.IService = &ledgerStub{}

func (s *ledgerStub) CreateEvent(ctx context.Context, input ledger.EventInput, actor model.Actor) (model.Event, error) {
	return s.createEvent(ctx, input, actor)
}

func (s *ledgerStub) GetEvent(ctx context.Context, eventID int64) (model.Event, error) {
	return s.getEvent(ctx, eventID)
}

func (s *ledgerStub) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.listEvents(ctx)
}

func (s *ledgerStub) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.deleteEvent(ctx, eventID)
}

func (s *ledgerStub) Register(ctx context.Context, eventID int64, userID int64, formData []byte) (model.Registration, error) {
	return s.register(ctx, eventID, userID, formData)
}

func (s *ledgerStub) UpdateStatus(ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor) (model.Registration, error) {
	return s.updateStatus(ctx, registrationID, status, actor)
}

func (s *ledgerStub) MarkAttendance(ctx context.Context, registrationID int64, attended bool, actor model.Actor) (model.Registration, error) {
	return s.markAttendance(ctx, registrationID, attended, actor)
}

func (s *ledgerStub) Unregister(ctx context.Context, registrationID int64) error {
	return s.unregister(ctx, registrationID)
}

func (s *ledgerStub) ListRegistrations(ctx context.Context, eventID int64) ([]model.Registration, error) {
	return s.listRegs(ctx, eventID)
}

func (s *ledgerStub) Recount(ctx context.Context, eventID int64) (int64, error) {
	return s.recount(ctx, eventID)
}

type certStub struct {
	issue          func(ctx context.Context, eventID int64, userID int64, issuedBy model.Actor) (certificate.IssueResult, error)
	bulkIssue      func(ctx context.Context, eventID int64, issuedBy model.Actor) (certificate.BulkResult, error)
	getCertificate func(ctx context.Context, eventID int64, userID int64) (model.Certificate, error)
	listByEvent    func(ctx context.Context, eventID int64) ([]model.Certificate, error)
	listByUser     func(ctx context.Context, userID int64) ([]model.Certificate, error)
	createTemplate func(ctx context.Context, input certificate.TemplateInput, actor model.Actor) (model.CertificateTemplate, error)
	listTemplates  func(ctx context.Context) ([]model.CertificateTemplate, error)
	deleteTemplate func(ctx context.Context, templateID int64) error
}

var _ certificate.IService = &certStub{}

func (s *certStub) Issue(ctx context.Context, eventID int64, userID int64, issuedBy model.Actor) (certificate.IssueResult, error) {
	return s.issue(ctx, eventID, userID, issuedBy)
}

func (s *certStub) BulkIssue(ctx context.Context, eventID int64, issuedBy model.Actor) (certificate.BulkResult, error) {
	return s.bulkIssue(ctx, eventID, issuedBy)
}

func (s *certStub) GetCertificate(ctx context.Context, eventID int64, userID int64) (model.Certificate, error) {
	return s.getCertificate(ctx, eventID, userID)
}

func (s *certStub) ListByEvent(ctx context.Context, eventID int64) ([]model.Certificate, error) {
	return s.listByEvent(ctx, eventID)
}

func (s *certStub) ListByUser(ctx context.Context, userID int64) ([]model.Certificate, error) {
	return s.listByUser(ctx, userID)
}

func (s *certStub) CreateTemplate(ctx context.Context, input certificate.TemplateInput, actor model.Actor) (model.CertificateTemplate, error) {
	return s.createTemplate(ctx, input, actor)
}

func (s *certStub) ListTemplates(ctx context.Context) ([]model.CertificateTemplate, error) {
	return s.listTemplates(ctx)
}

func (s *certStub) DeleteTemplate(ctx context.Context, templateID int64) error {
	return s.deleteTemplate(ctx, templateID)
}

type handlerTest struct {
	ledgerStub *ledgerStub
	certStub   *certStub
	router     http.Handler
}

func newHandlerTest() *handlerTest {
	h := &handlerTest{
		ledgerStub: &ledgerStub{},
		certStub:   &certStub{},
	}
	h.router = New(h.ledgerStub, h.certStub).Router()
	return h
}

func (h *handlerTest) do(method string, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, req)
	return recorder
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	err := json.Unmarshal(recorder.Body.Bytes(), &e)
	assert.Equal(t, nil, err)
	return e
}

func TestHandler__Register(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.register = func(
		ctx context.Context, eventID int64, userID int64, formData []byte,
	) (model.Registration, error) {
		assert.Equal(t, int64(11), eventID)
		assert.Equal(t, int64(21), userID)
		assert.Equal(t, `{"team":"a"}`, string(formData))
		return model.Registration{ID: 31, EventID: eventID, UserID: userID}, nil
	}

	recorder := h.do(http.MethodPost, "/api/events/11/registrations",
		`{"userId": 21, "formData": {"team":"a"}}`, nil)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	e := decodeEnvelope(t, recorder)
	assert.Equal(t, true, e.Success)

	var reg model.Registration
	assert.Equal(t, nil, json.Unmarshal(e.Data, &reg))
	assert.Equal(t, int64(31), reg.ID)
}

func TestHandler__Register__Duplicate(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.register = func(
		ctx context.Context, eventID int64, userID int64, formData []byte,
	) (model.Registration, error) {
		return model.Registration{}, ledger.ErrDuplicateRegistration
	}

	recorder := h.do(http.MethodPost, "/api/events/11/registrations", `{"userId": 21}`, nil)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	e := decodeEnvelope(t, recorder)
	assert.Equal(t, false, e.Success)
	assert.Equal(t, ledger.ErrDuplicateRegistration.Error(), e.Message)
}

func TestHandler__Register__Missing_User(t *testing.T) {
	h := newHandlerTest()

	recorder := h.do(http.MethodPost, "/api/events/11/registrations", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler__Register__Invalid_Event_ID(t *testing.T) {
	h := newHandlerTest()

	recorder := h.do(http.MethodPost, "/api/events/abc/registrations", `{"userId": 21}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler__UpdateStatus__Actor_From_Header(t *testing.T) {
	h := newHandlerTest()

	var gotActor model.Actor
	h.ledgerStub.updateStatus = func(
		ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor,
	) (model.Registration, error) {
		gotActor = actor
		assert.Equal(t, int64(31), registrationID)
		assert.Equal(t, model.RegistrationStatusApproved, status)
		return model.Registration{ID: 31, Status: status}, nil
	}

	recorder := h.do(http.MethodPut, "/api/registrations/31/status",
		`{"status": "approved"}`, map[string]string{"X-Actor-Id": "99"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, model.UserActor(99), gotActor)
}

func TestHandler__UpdateStatus__Env_Admin_Actor(t *testing.T) {
	h := newHandlerTest()

	var gotActor model.Actor
	h.ledgerStub.updateStatus = func(
		ctx context.Context, registrationID int64, status model.RegistrationStatus, actor model.Actor,
	) (model.Registration, error) {
		gotActor = actor
		return model.Registration{}, nil
	}

	recorder := h.do(http.MethodPut, "/api/registrations/31/status",
		`{"status": "rejected"}`, map[string]string{"X-Actor-Id": "admin"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, model.EnvAdmin(), gotActor)
}

func TestHandler__UpdateStatus__Invalid_Status(t *testing.T) {
	h := newHandlerTest()

	recorder := h.do(http.MethodPut, "/api/registrations/31/status",
		`{"status": "confirmed"}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler__GetEvent__Not_Found(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.getEvent = func(ctx context.Context, eventID int64) (model.Event, error) {
		return model.Event{}, ledger.ErrEventNotFound
	}

	recorder := h.do(http.MethodGet, "/api/events/11", "", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler__GetEvent__Internal_Error_Hidden(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.getEvent = func(ctx context.Context, eventID int64) (model.Event, error) {
		return model.Event{}, errors.New("dial tcp: connection refused")
	}

	recorder := h.do(http.MethodGet, "/api/events/11", "", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	e := decodeEnvelope(t, recorder)
	assert.Equal(t, "internal server error", e.Message)
}

func TestHandler__Recount(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.recount = func(ctx context.Context, eventID int64) (int64, error) {
		return 7, nil
	}

	recorder := h.do(http.MethodPost, "/api/events/11/recount", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	e := decodeEnvelope(t, recorder)
	var resp RecountResponse
	assert.Equal(t, nil, json.Unmarshal(e.Data, &resp))
	assert.Equal(t, int64(11), resp.EventID)
	assert.Equal(t, int64(7), resp.RegisteredCount)
}

func TestHandler__Issue__Created(t *testing.T) {
	h := newHandlerTest()
	h.certStub.issue = func(
		ctx context.Context, eventID int64, userID int64, issuedBy model.Actor,
	) (certificate.IssueResult, error) {
		return certificate.IssueResult{
			Certificate: model.Certificate{ID: 51, EventID: eventID, UserID: userID},
		}, nil
	}

	recorder := h.do(http.MethodPost, "/api/events/11/certificates/21", "", nil)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	e := decodeEnvelope(t, recorder)
	var resp IssueResponse
	assert.Equal(t, nil, json.Unmarshal(e.Data, &resp))
	assert.Equal(t, false, resp.AlreadyIssued)
	assert.Equal(t, int64(51), resp.Certificate.ID)
}

func TestHandler__Issue__Already_Issued(t *testing.T) {
	h := newHandlerTest()
	h.certStub.issue = func(
		ctx context.Context, eventID int64, userID int64, issuedBy model.Actor,
	) (certificate.IssueResult, error) {
		return certificate.IssueResult{
			Certificate:   model.Certificate{ID: 51},
			AlreadyIssued: true,
		}, nil
	}

	recorder := h.do(http.MethodPost, "/api/events/11/certificates/21", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	e := decodeEnvelope(t, recorder)
	var resp IssueResponse
	assert.Equal(t, nil, json.Unmarshal(e.Data, &resp))
	assert.Equal(t, true, resp.AlreadyIssued)
}

func TestHandler__Issue__Not_Attended(t *testing.T) {
	h := newHandlerTest()
	h.certStub.issue = func(
		ctx context.Context, eventID int64, userID int64, issuedBy model.Actor,
	) (certificate.IssueResult, error) {
		return certificate.IssueResult{}, certificate.ErrNotAttended
	}

	recorder := h.do(http.MethodPost, "/api/events/11/certificates/21", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler__BulkIssue(t *testing.T) {
	h := newHandlerTest()
	h.certStub.bulkIssue = func(
		ctx context.Context, eventID int64, issuedBy model.Actor,
	) (certificate.BulkResult, error) {
		return certificate.BulkResult{
			Issued:  []model.Certificate{{ID: 51}},
			Skipped: []model.Certificate{{ID: 52}},
			Failed:  []certificate.BulkItemError{{UserID: 23, Reason: "user not found"}},
		}, nil
	}

	recorder := h.do(http.MethodPost, "/api/events/11/certificates/bulk", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	e := decodeEnvelope(t, recorder)

	var keys map[string]json.RawMessage
	assert.Equal(t, nil, json.Unmarshal(e.Data, &keys))
	assert.Equal(t, 3, len(keys))
	assert.NotNil(t, keys["success"])
	assert.NotNil(t, keys["skipped"])
	assert.NotNil(t, keys["failed"])

	var result certificate.BulkResult
	assert.Equal(t, nil, json.Unmarshal(e.Data, &result))
	assert.Equal(t, 1, len(result.Issued))
	assert.Equal(t, 1, len(result.Skipped))
	assert.Equal(t, 1, len(result.Failed))
	assert.Equal(t, "user not found", result.Failed[0].Reason)
}

func TestHandler__ListEvents__Empty_Array(t *testing.T) {
	h := newHandlerTest()
	h.ledgerStub.listEvents = func(ctx context.Context) ([]model.Event, error) {
		return nil, nil
	}

	recorder := h.do(http.MethodGet, "/api/events", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	e := decodeEnvelope(t, recorder)
	assert.Equal(t, "[]", string(e.Data))
}

func TestHandler__CreateTemplate__Invalid_Design(t *testing.T) {
	h := newHandlerTest()

	recorder := h.do(http.MethodPost, "/api/templates",
		`{"name": "Default", "design": "fancy"}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler__CreateTemplate(t *testing.T) {
	h := newHandlerTest()
	h.certStub.createTemplate = func(
		ctx context.Context, input certificate.TemplateInput, actor model.Actor,
	) (model.CertificateTemplate, error) {
		assert.Equal(t, "Default", input.Name)
		assert.Equal(t, model.TemplateDesignElegant, input.Design)
		assert.Equal(t, true, input.IsDefault)
		return model.CertificateTemplate{ID: 41, Name: input.Name}, nil
	}

	recorder := h.do(http.MethodPost, "/api/templates",
		`{"name": "Default", "design": "elegant", "isDefault": true}`, nil)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}
