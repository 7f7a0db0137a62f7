package dto

import "time"

// PatchSectionRequest shallow-merge patch for one settings section. The body
// is the patch object itself.
type PatchSectionRequest map[string]any

// SettingResponse full settings document.
type SettingResponse struct {
	ShopID        string         `json:"shopId"`
	Shop          map[string]any `json:"shop"`
	Tax           map[string]any `json:"tax"`
	Payments      map[string]any `json:"payments"`
	Notifications map[string]any `json:"notifications"`
	System        map[string]any `json:"system"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// PatchTemplatesRequest merges notification templates over the stored ones.
type PatchTemplatesRequest struct {
	Templates map[string]string `json:"templates" validate:"required"`
}

// NotificationTemplateResponse template document output.
type NotificationTemplateResponse struct {
	ShopID    string            `json:"shopId"`
	Templates map[string]string `json:"templates"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
