package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/palmrow/storefront-backend/internal/contact"
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

// Append writes one "<email> : <msg>" line to the messages log, creating the
// file on first use. Writes are serialized so interleaved submissions cannot
// mix lines.
func (s *store) Append(ctx context.Context, msg contact.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening messages log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(msg.Email + " : " + msg.Msg + "\n"); err != nil {
		return fmt.Errorf("appending message: %w", err)
	}

	return nil
}
