package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/phishscan/internal/core/domain"
	"stoik.com/phishscan/mocks"
)

func TestLoadBrands_WithoutStorage(t *testing.T) {
	brands, err := LoadBrands(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultBrands(), brands)
}

func TestLoadBrands_FromStorage(t *testing.T) {
	ctx := context.Background()
	stored := []domain.Brand{{Name: "acme", Domains: []string{"acme.com"}}}
	storage := mocks.NewBrandStorage(t)
	storage.EXPECT().ListBrands(ctx).Return(stored, nil)

	brands, err := LoadBrands(ctx, storage)

	require.NoError(t, err)
	assert.Equal(t, stored, brands)
}

func TestLoadBrands_EmptyCatalogueFallsBack(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewBrandStorage(t)
	storage.EXPECT().ListBrands(ctx).Return([]domain.Brand{}, nil)

	brands, err := LoadBrands(ctx, storage)

	require.NoError(t, err)
	assert.Equal(t, DefaultBrands(), brands)
}

func TestLoadBrands_StorageError(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	storage := mocks.NewBrandStorage(t)
	storage.EXPECT().ListBrands(ctx).Return(nil, dbErr)

	_, err := LoadBrands(ctx, storage)

	assert.ErrorIs(t, err, dbErr)
}
