package storage

import (
	"context"
	"fmt"
	"strings"

	"stoik.com/phishscan/internal/core/domain"
)

// BrandsStorage reads the protected brand catalogue from the brands table
// (one row per brand name and legitimate domain).
type BrandsStorage struct {
	db *PostgresDB
}

func NewBrandsStorage(db *PostgresDB) *BrandsStorage {
	return &BrandsStorage{
		db: db,
	}
}

func (s *BrandsStorage) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, domain
		FROM brands
		ORDER BY lower(name), lower(domain)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	index := make(map[string]int)
	for rows.Next() {
		var name, brandDomain string
		if err := rows.Scan(&name, &brandDomain); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		name = strings.ToLower(name)
		i, ok := index[name]
		if !ok {
			i = len(brands)
			index[name] = i
			brands = append(brands, domain.Brand{Name: name})
		}
		brands[i].Domains = append(brands[i].Domains, strings.ToLower(brandDomain))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}
