package service

import (
	"context"
	"errors"

	"github.com/palmrow/storefront-backend/internal/apperror"
	"github.com/palmrow/storefront-backend/internal/product"
	"github.com/palmrow/storefront-backend/internal/product/db"
	"go.uber.org/zap"
)

var ErrProductNotExists = apperror.NewNotFoundError("the requested product does not exist.")

type Repository interface {
	GetAll(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetCatalog(ctx context.Context) ([]product.Product, error) {
	catalog, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching catalog", zap.Error(err))

		return nil, err
	}

	return catalog, nil
}

// GetCatalogByType filters the catalog by exact type-string equality,
// preserving catalog order. No match is an empty result, never an error.
func (s *service) GetCatalogByType(ctx context.Context, productType string) ([]product.Product, error) {
	catalog, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]product.Product, 0)

	for _, p := range catalog {
		if p.Type == productType {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, ErrProductNotExists
		}

		s.logger.Error("unexpected error when fetching product by id", zap.Error(err))

		return nil, err
	}

	return p, nil
}
