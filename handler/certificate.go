package handler

import (
	"net/http"

	"github.com/campushub/eventcore/model"
	"github.com/campushub/eventcore/service/certificate"
)

// IssueResponse ...
type IssueResponse struct {
	Certificate   model.Certificate `json:"certificate"`
	AlreadyIssued bool              `json:"alreadyIssued"`
}

// Issue handles POST /api/events/{eventID}/certificates/{userID}
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	userID, err := pathInt64(r, "userID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	result, err := h.certService.Issue(r.Context(), eventID, userID, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyIssued {
		status = http.StatusOK
	}
	writeData(w, status, IssueResponse{
		Certificate:   result.Certificate,
		AlreadyIssued: result.AlreadyIssued,
	})
}

// BulkIssue handles POST /api/events/{eventID}/certificates/bulk
func (h *Handler) BulkIssue(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	result, err := h.certService.BulkIssue(r.Context(), eventID, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

// GetCertificate handles GET /api/events/{eventID}/certificates/{userID}
func (h *Handler) GetCertificate(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	userID, err := pathInt64(r, "userID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	cert, err := h.certService.GetCertificate(r.Context(), eventID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, cert)
}

// ListEventCertificates handles GET /api/events/{eventID}/certificates
func (h *Handler) ListEventCertificates(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathInt64(r, "eventID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	certs, err := h.certService.ListByEvent(r.Context(), eventID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if certs == nil {
		certs = []model.Certificate{}
	}
	writeData(w, http.StatusOK, certs)
}

// ListUserCertificates handles GET /api/users/{userID}/certificates
func (h *Handler) ListUserCertificates(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "userID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	certs, err := h.certService.ListByUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if certs == nil {
		certs = []model.Certificate{}
	}
	writeData(w, http.StatusOK, certs)
}

// CreateTemplateRequest ...
type CreateTemplateRequest struct {
	Name            string `json:"name"`
	Design          string `json:"design"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	IsDefault       bool   `json:"isDefault"`
}

var designNames = map[string]model.TemplateDesign{
	"":          model.TemplateDesignModern,
	"modern":    model.TemplateDesignModern,
	"classic":   model.TemplateDesignClassic,
	"elegant":   model.TemplateDesignElegant,
	"corporate": model.TemplateDesignCorporate,
}

// CreateTemplate handles POST /api/templates
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	actor, err := actorOf(r)
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	var req CreateTemplateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		h.badRequest(w, "name is required")
		return
	}
	design, ok := designNames[req.Design]
	if !ok {
		h.badRequest(w, "design must be one of: modern, classic, elegant, corporate")
		return
	}

	tpl, err := h.certService.CreateTemplate(r.Context(), certificate.TemplateInput{
		Name:            req.Name,
		Design:          design,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		IsDefault:       req.IsDefault,
	}, actor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, tpl)
}

// ListTemplates handles GET /api/templates
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.certService.ListTemplates(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if templates == nil {
		templates = []model.CertificateTemplate{}
	}
	writeData(w, http.StatusOK, templates)
}

// DeleteTemplate handles DELETE /api/templates/{templateID}
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := pathInt64(r, "templateID")
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	if err := h.certService.DeleteTemplate(r.Context(), templateID); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "template deleted"})
}
