package certificate

import (
	"context"
	"encoding/json"

	"github.com/campushub/eventcore/model"
)

// TemplateInput ...
type TemplateInput struct {
	Name            string
	Design          model.TemplateDesign
	BackgroundColor string
	TextColor       string
	IsDefault       bool
}

var defaultTemplateCacheKey = []byte("default-template")

const defaultTemplateCacheTTL = 60 // seconds

// defaultTemplate resolves the template used for issuance: the template
// marked default, falling back to the oldest one. Served from an
// in-process cache, a template change may take up to the TTL to be
// picked up by issuance.
func (s *Service) defaultTemplate(ctx context.Context) (model.CertificateTemplate, error) {
	data, err := s.templateCache.Get(defaultTemplateCacheKey)
	if err == nil {
		var tpl model.CertificateTemplate
		if unmarshalErr := json.Unmarshal(data, &tpl); unmarshalErr == nil {
			return tpl, nil
		}
	}

	nullTpl, err := s.templateRepo.FindDefaultTemplate(ctx)
	if err != nil {
		return model.CertificateTemplate{}, err
	}
	if !nullTpl.Valid {
		return model.CertificateTemplate{}, ErrNoTemplateAvailable
	}

	if data, marshalErr := json.Marshal(nullTpl.Template); marshalErr == nil {
		_ = s.templateCache.Set(defaultTemplateCacheKey, data, defaultTemplateCacheTTL)
	}
	return nullTpl.Template, nil
}

// CreateTemplate ...
func (s *Service) CreateTemplate(
	ctx context.Context, input TemplateInput, actor model.Actor,
) (model.CertificateTemplate, error) {
	now := s.nowFn()
	tpl := model.CertificateTemplate{
		Name:            input.Name,
		Design:          input.Design,
		BackgroundColor: input.BackgroundColor,
		TextColor:       input.TextColor,
		IsDefault:       input.IsDefault,
		CreatedBy:       actor.NullUserID(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if tpl.Design == 0 {
		tpl.Design = model.TemplateDesignModern
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.templateRepo.InsertTemplate(ctx, tpl)
		if err != nil {
			return err
		}
		tpl.ID = id
		return nil
	})
	if err != nil {
		return model.CertificateTemplate{}, err
	}

	s.templateCache.Del(defaultTemplateCacheKey)
	return tpl, nil
}

// ListTemplates ...
func (s *Service) ListTemplates(ctx context.Context) ([]model.CertificateTemplate, error) {
	ctx = s.provider.Readonly(ctx)
	return s.templateRepo.FindTemplates(ctx)
}

// DeleteTemplate ...
func (s *Service) DeleteTemplate(ctx context.Context, templateID int64) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		affected, err := s.templateRepo.DeleteTemplate(ctx, templateID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTemplateNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.templateCache.Del(defaultTemplateCacheKey)
	return nil
}
