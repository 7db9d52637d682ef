package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/palmrow/storefront-backend/internal/product"
	"github.com/palmrow/storefront-backend/pkg/recordfile"
	"go.uber.org/zap"
)

// recordFileName is the fixed record file inside every product directory.
const recordFileName = "info.txt"

// productFieldCount is the line count of a well-formed product record:
// name, price, dist, description, imgPath, type, imgAlt.
const productFieldCount = 7

var ErrProductNotFound = errors.New("product not found")

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

// GetAll scans the products root and decodes one record per subdirectory,
// in directory-listing order. Any unreadable or malformed record aborts the
// whole listing.
func (r *repository) GetAll(ctx context.Context) ([]product.Product, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("reading products root: %w", err)
	}

	catalog := make([]product.Product, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		p, err := r.GetByID(ctx, entry.Name())
		if err != nil {
			return nil, err
		}

		catalog = append(catalog, *p)
	}

	return catalog, nil
}

// GetByID decodes the record of a single product directory. A missing
// directory or record file yields ErrProductNotFound; anything else is an
// infrastructure failure.
func (r *repository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	recordPath := filepath.Join(r.root, id, recordFileName)

	data, err := os.ReadFile(recordPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrProductNotFound
		}

		return nil, fmt.Errorf("reading product record %s: %w", recordPath, err)
	}

	fields, err := recordfile.Decode(data, productFieldCount)
	if err != nil {
		r.logger.Error("malformed product record", zap.String("path", recordPath), zap.Error(err))
		return nil, fmt.Errorf("decoding product record %s: %w", recordPath, err)
	}

	return &product.Product{
		ID:          id,
		Name:        fields[0],
		Price:       fields[1],
		Dist:        fields[2],
		Description: fields[3],
		ImgPath:     fields[4],
		Type:        fields[5],
		ImgAlt:      fields[6],
	}, nil
}
