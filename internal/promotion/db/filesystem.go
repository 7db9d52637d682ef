package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/palmrow/storefront-backend/internal/promotion"
	"github.com/palmrow/storefront-backend/pkg/recordfile"
	"go.uber.org/zap"
)

// promotionFieldCount is the line count of a well-formed promotion record:
// name, oldprice, price, description, id.
const promotionFieldCount = 5

type repository struct {
	root   string
	logger *zap.Logger
}

func New(root string, logger *zap.Logger) *repository {
	return &repository{
		root:   root,
		logger: logger,
	}
}

// GetAll decodes every file directly under the promotions root, in
// directory-listing order. Subdirectories are not expected and are skipped.
func (r *repository) GetAll(ctx context.Context) ([]promotion.Promotion, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("reading promotions root: %w", err)
	}

	promotions := make([]promotion.Promotion, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		recordPath := filepath.Join(r.root, entry.Name())

		data, err := os.ReadFile(recordPath)
		if err != nil {
			return nil, fmt.Errorf("reading promotion record %s: %w", recordPath, err)
		}

		fields, err := recordfile.Decode(data, promotionFieldCount)
		if err != nil {
			r.logger.Error("malformed promotion record", zap.String("path", recordPath), zap.Error(err))
			return nil, fmt.Errorf("decoding promotion record %s: %w", recordPath, err)
		}

		promotions = append(promotions, promotion.Promotion{
			Name:        fields[0],
			OldPrice:    fields[1],
			Price:       fields[2],
			Description: fields[3],
			ID:          fields[4],
		})
	}

	return promotions, nil
}
