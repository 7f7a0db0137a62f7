package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexsagar/teantea-api/internal/domain"
	"github.com/alexsagar/teantea-api/internal/domain/entity"
	"github.com/alexsagar/teantea-api/internal/domain/repository"
)

var (
	_ repository.SettingRepository              = (*SettingRepo)(nil)
	_ repository.NotificationTemplateRepository = (*NotificationTemplateRepo)(nil)
)

// SettingRepo implements SettingRepository over PostgreSQL. One row per shop,
// one JSONB column per section.
type SettingRepo struct {
	pool *pgxpool.Pool
}

// NewSettingRepository builds the settings persistence adapter.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepo {
	return &SettingRepo{pool: pool}
}

func scanSetting(row pgx.Row) (*entity.Setting, error) {
	var s entity.Setting
	err := row.Scan(&s.ShopID, &s.Shop, &s.Tax, &s.Payments, &s.Notifications, &s.System, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	return &s, nil
}

// GetOrCreate returns the shop's settings, inserting the defaults first when
// no row exists. ON CONFLICT DO NOTHING makes concurrent first reads safe.
func (r *SettingRepo) GetOrCreate(ctx context.Context, shopID string) (*entity.Setting, error) {
	def := entity.DefaultSetting(shopID)
	insert := `
		INSERT INTO settings (shop_id, shop, tax, payments, notifications, system, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (shop_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, insert,
		def.ShopID, def.Shop, def.Tax, def.Payments, def.Notifications, def.System, def.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	query := `SELECT shop_id, shop, tax, payments, notifications, system, updated_at FROM settings WHERE shop_id = $1`
	s, err := scanSetting(r.pool.QueryRow(ctx, query, shopID))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// PatchSection shallow-merges patch into the named section (jsonb || jsonb,
// top-level keys only) and returns the updated document. The section name is
// interpolated as a column, so it must pass the whitelist first.
func (r *SettingRepo) PatchSection(ctx context.Context, shopID, section string, patch map[string]any) (*entity.Setting, error) {
	if !entity.ValidSettingSection(section) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := r.GetOrCreate(ctx, shopID); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode settings patch: %w", err)
	}
	query := fmt.Sprintf(`
		UPDATE settings
		SET %s = %s || $2::jsonb, updated_at = now()
		WHERE shop_id = $1
		RETURNING shop_id, shop, tax, payments, notifications, system, updated_at`, section, section)
	s, err := scanSetting(r.pool.QueryRow(ctx, query, shopID, raw))
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// NotificationTemplateRepo implements NotificationTemplateRepository. One row
// per shop with the templates as a JSONB object.
type NotificationTemplateRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationTemplateRepository builds the template persistence adapter.
func NewNotificationTemplateRepository(pool *pgxpool.Pool) *NotificationTemplateRepo {
	return &NotificationTemplateRepo{pool: pool}
}

func scanTemplate(row pgx.Row) (*entity.NotificationTemplate, error) {
	var t entity.NotificationTemplate
	err := row.Scan(&t.ShopID, &t.Templates, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan notification templates: %w", err)
	}
	return &t, nil
}

// GetOrCreate returns the shop's templates, seeding the defaults on first read.
func (r *NotificationTemplateRepo) GetOrCreate(ctx context.Context, shopID string) (*entity.NotificationTemplate, error) {
	def := entity.DefaultNotificationTemplate(shopID)
	insert := `
		INSERT INTO notification_templates (shop_id, templates, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (shop_id) DO NOTHING`
	if _, err := r.pool.Exec(ctx, insert, def.ShopID, def.Templates, def.UpdatedAt); err != nil {
		return nil, fmt.Errorf("seed notification templates: %w", err)
	}
	query := `SELECT shop_id, templates, updated_at FROM notification_templates WHERE shop_id = $1`
	t, err := scanTemplate(r.pool.QueryRow(ctx, query, shopID))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// Patch merges the given templates over the stored ones and returns the result.
func (r *NotificationTemplateRepo) Patch(ctx context.Context, shopID string, templates map[string]string) (*entity.NotificationTemplate, error) {
	if _, err := r.GetOrCreate(ctx, shopID); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(templates)
	if err != nil {
		return nil, fmt.Errorf("encode templates patch: %w", err)
	}
	query := `
		UPDATE notification_templates
		SET templates = templates || $2::jsonb, updated_at = now()
		WHERE shop_id = $1
		RETURNING shop_id, templates, updated_at`
	t, err := scanTemplate(r.pool.QueryRow(ctx, query, shopID, raw))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}
