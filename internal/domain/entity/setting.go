package entity

import "time"

// Setting section names. Each section is independently patchable.
const (
	SectionShop          = "shop"
	SectionTax           = "tax"
	SectionPayments      = "payments"
	SectionNotifications = "notifications"
	SectionSystem        = "system"
)

// ValidSettingSection reports whether s names a known section.
func ValidSettingSection(s string) bool {
	switch s {
	case SectionShop, SectionTax, SectionPayments, SectionNotifications, SectionSystem:
		return true
	}
	return false
}

// Setting is the per-shop configuration document, lazily created with defaults
// on first read. Sections are free-form JSON objects; a patch is a shallow merge.
type Setting struct {
	ShopID        string
	Shop          map[string]any
	Tax           map[string]any
	Payments      map[string]any
	Notifications map[string]any
	System        map[string]any
	UpdatedAt     time.Time
}

// DefaultSetting returns the settings document a shop starts with.
func DefaultSetting(shopID string) *Setting {
	return &Setting{
		ShopID: shopID,
		Shop: map[string]any{
			"currency": "NPR",
			"timezone": "Asia/Kathmandu",
		},
		Tax: map[string]any{
			"enabled": false,
			"rate":    0,
		},
		Payments: map[string]any{
			"cash":   true,
			"card":   true,
			"qr":     true,
			"online": false,
		},
		Notifications: map[string]any{
			"newOrder":    true,
			"lowStock":    true,
			"tableStatus": true,
			"orderStatus": true,
		},
		System: map[string]any{
			"language": "en",
		},
		UpdatedAt: time.Now(),
	}
}

// Section returns the named section map, or nil when unknown.
func (s *Setting) Section(name string) map[string]any {
	switch name {
	case SectionShop:
		return s.Shop
	case SectionTax:
		return s.Tax
	case SectionPayments:
		return s.Payments
	case SectionNotifications:
		return s.Notifications
	case SectionSystem:
		return s.System
	}
	return nil
}
