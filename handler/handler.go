// Package handler contains the chi HTTP handlers translating requests
// to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/pkg/otellib"
	"github.com/campushub/eventcore/service/certificate"
	"github.com/campushub/eventcore/service/ledger"
	"go.uber.org/zap"
)

// actorHeader carries the pre-validated caller identity. Empty or the
// literal "admin" means the environment admin.
const actorHeader = "X-Actor-Id"

// Handler ...
type Handler struct {
	ledgerService ledger.IService
	certService   certificate.IService
}

// New ...
func New(ledgerService ledger.IService, certService certificate.IService) *Handler {
	return &Handler{
		ledgerService: ledgerService,
		certService:   certService,
	}
}

// Router builds the API router.
func (h *Handler) Router(middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, m := range middlewares {
		r.Use(m)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.CreateEvent)
			r.Get("/", h.ListEvents)
			r.Get("/{eventID}", h.GetEvent)
			r.Delete("/{eventID}", h.DeleteEvent)
			r.Post("/{eventID}/recount", h.Recount)

			r.Post("/{eventID}/registrations", h.Register)
			r.Get("/{eventID}/registrations", h.ListRegistrations)

			r.Get("/{eventID}/certificates", h.ListEventCertificates)
			r.Post("/{eventID}/certificates/bulk", h.BulkIssue)
			r.Post("/{eventID}/certificates/{userID}", h.Issue)
			r.Get("/{eventID}/certificates/{userID}", h.GetCertificate)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Put("/{registrationID}/status", h.UpdateStatus)
			r.Put("/{registrationID}/attendance", h.MarkAttendance)
			r.Delete("/{registrationID}", h.Unregister)
		})

		r.Get("/users/{userID}/certificates", h.ListUserCertificates)

		r.Route("/templates", func(r chi.Router) {
			r.Post("/", h.CreateTemplate)
			r.Get("/", h.ListTemplates)
			r.Delete("/{templateID}", h.DeleteTemplate)
		})
	})
	return r
}

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, response{Success: true, Data: data})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		otellib.Extract(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, status, response{Success: false, Message: "internal server error"})
		return
	}
	writeJSON(w, status, response{Success: false, Message: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ledger.ErrEventNotFound),
		errors.Is(err, ledger.ErrUserNotFound),
		errors.Is(err, ledger.ErrRegistrationNotFound),
		errors.Is(err, certificate.ErrEventNotFound),
		errors.Is(err, certificate.ErrUserNotFound),
		errors.Is(err, certificate.ErrCertificateNotFound),
		errors.Is(err, certificate.ErrTemplateNotFound):
		return http.StatusNotFound

	case errors.Is(err, ledger.ErrDuplicateRegistration):
		return http.StatusConflict

	case errors.Is(err, ledger.ErrRegistrationNotApproved),
		errors.Is(err, certificate.ErrNotAttended),
		errors.Is(err, certificate.ErrNoTemplateAvailable):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return value, nil
}

func actorOf(r *http.Request) (model.Actor, error) {
	value := r.Header.Get(actorHeader)
	if value == "" || value == "admin" {
		return model.EnvAdmin(), nil
	}
	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return model.Actor{}, errors.New("invalid " + actorHeader + " header")
	}
	return model.UserActor(userID), nil
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, response{Success: false, Message: msg})
}
