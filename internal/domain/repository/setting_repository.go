package repository

import (
	"context"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

// SettingRepository defines the persistence port for the per-shop settings
// document and the notification templates.
type SettingRepository interface {
	// GetOrCreate returns the shop's settings, inserting the defaults first if
	// the row does not exist yet.
	GetOrCreate(ctx context.Context, shopID string) (*entity.Setting, error)
	// PatchSection shallow-merges patch into the named section and returns the
	// updated document.
	PatchSection(ctx context.Context, shopID, section string, patch map[string]any) (*entity.Setting, error)
}

// NotificationTemplateRepository persists per-shop notification templates.
type NotificationTemplateRepository interface {
	GetOrCreate(ctx context.Context, shopID string) (*entity.NotificationTemplate, error)
	// Patch merges the given templates over the stored ones and returns the result.
	Patch(ctx context.Context, shopID string, templates map[string]string) (*entity.NotificationTemplate, error)
}
