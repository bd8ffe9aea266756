package repositories

import "github.com/makerops/costing/pkg/domain/entities"

// SettingsRepository provides access to shop-wide costing settings
type SettingsRepository interface {
	// GetLabourRate returns the current labour rate in cents per hour
	GetLabourRate() (entities.Cents, error)
	SetLabourRate(rate entities.Cents) error
}
