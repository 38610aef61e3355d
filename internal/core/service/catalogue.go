package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/internal/core/port"
)

// LoadBrands reads the brand catalogue once. Without storage, or with an empty
// catalogue, the built-in DefaultBrands are used.
func LoadBrands(ctx context.Context, storage port.BrandStorage) ([]domain.Brand, error) {
	if storage == nil {
		return DefaultBrands(), nil
	}

	brands, err := storage.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand catalogue: %w", err)
	}
	if len(brands) == 0 {
		log.Warn("Brand catalogue is empty, using built-in brands")
		return DefaultBrands(), nil
	}

	log.WithField("brands", len(brands)).Info("Brand catalogue loaded")
	return brands, nil
}
