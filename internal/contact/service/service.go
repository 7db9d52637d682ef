package service

import (
	"context"

	"github.com/palmrow/storefront-backend/internal/contact"
	"go.uber.org/zap"
)

type Store interface {
	Append(ctx context.Context, msg contact.Message) error
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

func (s *service) SubmitMessage(ctx context.Context, msg contact.Message) error {
	if err := s.store.Append(ctx, msg); err != nil {
		s.logger.Error("unexpected error when appending contact message", zap.Error(err))

		return err
	}

	return nil
}
