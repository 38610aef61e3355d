package port

import (
	"context"

	"stoik.com/phishscan/internal/core/domain"
)

type BrandStorage interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
}
