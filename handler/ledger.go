package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/service/ledger"
)

// CreateEventRequest ...
type CreateEventRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	MaxParticipants  int64     `json:"maxParticipants"`
	Status           int       `json:"status"`
	RequiresApproval bool      `json:"requiresApproval"`
}

// CreateEvent handles POST /api/events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	var req CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		h.badRequest(w, "title is required")
		return
	}

	event, err := h.ledgerService.CreateEvent(r.Context(), ledger.EventInput{
		Title:            req.Title,
		Description:      req.Description,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		MaxParticipants:  req.MaxParticipants,
		Status:           model.EventStatus(req.Status),
		RequiresApproval: req.RequiresApproval,
	}, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, event)
}

// ListEvents handles GET /api/events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.ledgerService.ListEvents(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeData(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{eventID}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	event, err := h.ledgerService.GetEvent(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/{eventID}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if err := h.ledgerService.DeleteEvent(r.Context(), eventID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "event deleted"})
}

// RecountResponse ...
type RecountResponse struct {
	EventID         int64 `json:"eventId"`
	RegisteredCount int64 `json:"registeredCount"`
}

// Recount handles POST /api/events/{eventID}/recount
func (h *Handler) Recount(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	count, err := h.ledgerService.Recount(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, RecountResponse{EventID: eventID, RegisteredCount: count})
}

// RegisterRequest ...
type RegisterRequest struct {
	UserID   int64           `json:"userId"`
	FormData json.RawMessage `json:"formData"`
}

// Register handles POST /api/events/{eventID}/registrations
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.UserID == 0 {
		h.badRequest(w, "userId is required")
		return
	}

	reg, err := h.ledgerService.Register(r.Context(), eventID, req.UserID, req.FormData)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, reg)
}

// ListRegistrations handles GET /api/events/{eventID}/registrations
func (h *Handler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	regs, err := h.ledgerService.ListRegistrations(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	writeData(w, http.StatusOK, regs)
}

// UpdateStatusRequest ...
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

var statusNames = map[string]model.RegistrationStatus{
	"pending":  model.RegistrationStatusPending,
	"approved": model.RegistrationStatusApproved,
	"rejected": model.RegistrationStatusRejected,
}

// UpdateStatus handles PUT /api/registrations/{registrationID}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	registrationID, err := pathInt64(r, "registrationID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	var req UpdateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body: "+err.Error())
		return
	}
	status, ok := statusNames[req.Status]
	if !ok {
		h.badRequest(w, "status must be one of: pending, approved, rejected")
		return
	}

	reg, err := h.ledgerService.UpdateStatus(r.Context(), registrationID, status, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, reg)
}

// MarkAttendanceRequest ...
type MarkAttendanceRequest struct {
	Attended bool `json:"attended"`
}

// MarkAttendance handles PUT /api/registrations/{registrationID}/attendance
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	registrationID, err := pathInt64(r, "registrationID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	var req MarkAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.ledgerService.MarkAttendance(r.Context(), registrationID, req.Attended, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, reg)
}

// Unregister handles DELETE /api/registrations/{registrationID}
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	registrationID, err := pathInt64(r, "registrationID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if err := h.ledgerService.Unregister(r.Context(), registrationID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "registration removed"})
}
