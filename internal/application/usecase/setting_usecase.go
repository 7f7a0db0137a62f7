package usecase

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/application/dto"
	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

// SettingUseCase per-shop settings document and notification templates.
type SettingUseCase struct {
	settings  repository.SettingRepository
	templates repository.NotificationTemplateRepository
}

// NewSettingUseCase builds the usecase.
func NewSettingUseCase(settings repository.SettingRepository, templates repository.NotificationTemplateRepository) *SettingUseCase {
	return &SettingUseCase{settings: settings, templates: templates}
}

// Get returns the settings document, creating the defaults on first read.
func (uc *SettingUseCase) Get(ctx context.Context, shopID string) (*dto.SettingResponse, error) {
	s, err := uc.settings.GetOrCreate(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return toSettingResponse(s), nil
}

// PatchSection shallow-merges a patch into one named section.
func (uc *SettingUseCase) PatchSection(ctx context.Context, shopID, section string, patch dto.PatchSectionRequest) (*dto.SettingResponse, error) {
	if !entity.ValidSettingSection(section) {
		return nil, domain.ErrInvalidInput
	}
	if len(patch) == 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settings.PatchSection(ctx, shopID, section, patch)
	if err != nil {
		return nil, err
	}
	return toSettingResponse(s), nil
}

// GetTemplates returns the shop's notification templates, seeding defaults.
func (uc *SettingUseCase) GetTemplates(ctx context.Context, shopID string) (*dto.NotificationTemplateResponse, error) {
	t, err := uc.templates.GetOrCreate(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// PatchTemplates merges the given templates over the stored ones.
func (uc *SettingUseCase) PatchTemplates(ctx context.Context, shopID string, in dto.PatchTemplatesRequest) (*dto.NotificationTemplateResponse, error) {
	if len(in.Templates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.templates.Patch(ctx, shopID, in.Templates)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		ShopID:        s.ShopID,
		Shop:          s.Shop,
		Tax:           s.Tax,
		Payments:      s.Payments,
		Notifications: s.Notifications,
		System:        s.System,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toTemplateResponse(t *entity.NotificationTemplate) *dto.NotificationTemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.NotificationTemplateResponse{
		ShopID:    t.ShopID,
		Templates: t.Templates,
		UpdatedAt: t.UpdatedAt,
	}
}
