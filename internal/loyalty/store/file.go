package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/palmrow/storefront-backend/internal/loyalty"
	"go.uber.org/zap"
)

type store struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func New(path string, logger *zap.Logger) *store {
	return &store{
		path:   path,
		logger: logger,
	}
}

// Add appends a signup to the persisted JSON array. The whole
// read-modify-write runs under one lock, so concurrent signups cannot lose
// each other's writes. A missing file counts as an empty array.
func (s *store) Add(ctx context.Context, signup loyalty.Signup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	signups, err := s.readAll()
	if err != nil {
		return err
	}

	signups = append(signups, signup)

	data, err := json.MarshalIndent(signups, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding signups: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing signups file: %w", err)
	}

	return nil
}

func (s *store) readAll() ([]loyalty.Signup, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []loyalty.Signup{}, nil
		}

		return nil, fmt.Errorf("reading signups file: %w", err)
	}

	var signups []loyalty.Signup
	if err := json.Unmarshal(data, &signups); err != nil {
		return nil, fmt.Errorf("decoding signups file: %w", err)
	}

	return signups, nil
}
