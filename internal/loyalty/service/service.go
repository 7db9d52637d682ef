package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/palmrow/storefront-backend/internal/loyalty"
	"go.uber.org/zap"
)

type Store interface {
	Add(ctx context.Context, signup loyalty.Signup) error
}

type service struct {
	store  Store
	logger *zap.Logger
}

func New(store Store, logger *zap.Logger) *service {
	return &service{
		store:  store,
		logger: logger,
	}
}

func (s *service) RegisterSignup(ctx context.Context, signup loyalty.Signup) error {
	signup.ID = uuid.NewString()

	if err := s.store.Add(ctx, signup); err != nil {
		s.logger.Error("unexpected error when persisting loyalty signup", zap.Error(err))

		return err
	}

	return nil
}
