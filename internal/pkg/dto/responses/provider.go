package responses

import (
	"time"

	"medrecord-service/internal/app/models"
)

// Provider wraps the stored document with the derived license validity.
type Provider struct {
	models.Provider
	IsLicenseValid bool `json:"isLicenseValid"`
}

func NewProvider(provider *models.Provider, now time.Time) *Provider {
	return &Provider{
		Provider:       *provider,
		IsLicenseValid: provider.IsLicenseValid(now),
	}
}

func NewProviders(providers []models.Provider, now time.Time) []*Provider {
	result := make([]*Provider, 0, len(providers))
	for i := range providers {
		result = append(result, NewProvider(&providers[i], now))
	}
	return result
}
