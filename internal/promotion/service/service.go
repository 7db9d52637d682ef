package service

import (
	"context"

	"github.com/palmrow/storefront-backend/internal/promotion"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]promotion.Promotion, error)
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

func (s *service) GetPromotions(ctx context.Context) ([]promotion.Promotion, error) {
	promotions, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching promotions", zap.Error(err))

		return nil, err
	}

	return promotions, nil
}
