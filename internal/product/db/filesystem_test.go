package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/palmrow/storefront-backend/internal/product"
	"github.com/palmrow/storefront-backend/pkg/recordfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeRecord(t *testing.T, root, id, contents string) {
	t.Helper()

	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, recordFileName), []byte(contents), 0644))
}

func TestGetByID(t *testing.T) {
	root := t.TempDir()

	writeRecord(t, root, "seashell-cove",
		"Seashell Cove\n120\n3\na quiet cove with white sand\nimg/seashell-cove.jpeg\nbeach\na cove at sunset\n")

	repo := New(root, zap.NewNop())

	p, err := repo.GetByID(context.Background(), "seashell-cove")
	require.NoError(t, err)

	assert.Equal(t, &product.Product{
		ID:          "seashell-cove",
		Name:        "Seashell Cove",
		Price:       "120",
		Dist:        "3",
		Description: "a quiet cove with white sand",
		ImgPath:     "img/seashell-cove.jpeg",
		Type:        "beach",
		ImgAlt:      "a cove at sunset",
	}, p)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := New(t.TempDir(), zap.NewNop())

	_, err := repo.GetByID(context.Background(), "nowhere")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetByIDMalformedRecord(t *testing.T) {
	root := t.TempDir()

	writeRecord(t, root, "broken", "only\nthree\nlines\n")

	repo := New(root, zap.NewNop())

	_, err := repo.GetByID(context.Background(), "broken")
	require.ErrorIs(t, err, recordfile.ErrMalformedRecord)
}

func TestGetAll(t *testing.T) {
	root := t.TempDir()

	writeRecord(t, root, "cedar-ridge",
		"Cedar Ridge\n90\n25\na cabin above the treeline\nimg/cedar-ridge.jpeg\nmountain\na cabin in the snow\n")
	writeRecord(t, root, "seashell-cove",
		"Seashell Cove\n120\n3\na quiet cove with white sand\nimg/seashell-cove.jpeg\nbeach\na cove at sunset\n")

	// Stray files directly under the root are not product directories.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignore me"), 0644))

	repo := New(root, zap.NewNop())

	catalog, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, catalog, 2)
	assert.Equal(t, "cedar-ridge", catalog[0].ID)
	assert.Equal(t, "seashell-cove", catalog[1].ID)
}

func TestGetAllAbortsOnMalformedRecord(t *testing.T) {
	root := t.TempDir()

	writeRecord(t, root, "cedar-ridge",
		"Cedar Ridge\n90\n25\na cabin above the treeline\nimg/cedar-ridge.jpeg\nmountain\na cabin in the snow\n")
	writeRecord(t, root, "broken", "too\nfew\nlines\n")

	repo := New(root, zap.NewNop())

	_, err := repo.GetAll(context.Background())
	require.ErrorIs(t, err, recordfile.ErrMalformedRecord)
}

func TestGetAllMissingRoot(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "missing"), zap.NewNop())

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
}
