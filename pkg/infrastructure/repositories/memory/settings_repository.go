package memory

import (
	"github.com/makerops/costing/pkg/domain/entities"
	"github.com/makerops/costing/pkg/domain/repositories"
)

// SettingsRepository provides in-memory costing settings
type SettingsRepository struct {
	labourRate entities.Cents
}

// NewSettingsRepository creates a new in-memory settings repository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Verify interface compliance
var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SetLabourRate sets the labour rate in cents per hour
func (r *SettingsRepository) SetLabourRate(rate entities.Cents) error {
	r.labourRate = rate
	return nil
}

// GetLabourRate returns the labour rate in cents per hour
func (r *SettingsRepository) GetLabourRate() (entities.Cents, error) {
	return r.labourRate, nil
}
