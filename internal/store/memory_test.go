package store

import (
	"context"
	"testing"

	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Memory_PutAndGetByKey(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	product := Product{ID: "1", Name: "A", Description: "d", Price: 10, Category: "x"}

	// when
	require.NoError(t, s.Put(ctx, product))
	found, err := s.GetByKey(ctx, "1")

	// then
	require.NoError(t, err)
	assert.Equal(t, product, *found)
}

func Test_Memory_PutOverwritesExisting(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, Product{ID: "1", Name: "A", Category: "x"}))

	// when: put with the same id is an unconditional overwrite
	require.NoError(t, s.Put(ctx, Product{ID: "1", Name: "B", Category: "y"}))

	// then
	found, err := s.GetByKey(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "B", found.Name)
	assert.Equal(t, "y", found.Category)
}

func Test_Memory_GetByKey_NotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetByKey(context.Background(), "missing")
	require.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func Test_Memory_ScanAll(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()

	// when / then: empty collection scans to an empty slice
	list, err := s.ScanAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// and: every item comes back
	require.NoError(t, s.Put(ctx, Product{ID: "1"}))
	require.NoError(t, s.Put(ctx, Product{ID: "2"}))
	list, err = s.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func Test_Memory_QueryByCategory(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, Product{ID: "1", Category: "shoes"}))
	require.NoError(t, s.Put(ctx, Product{ID: "2", Category: "hats"}))

	// when
	shoes, err := s.QueryByCategory(ctx, "shoes")

	// then: exactly the matching set, the other category excluded
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, "1", shoes[0].ID)
}

func Test_Memory_Update_PartialPatch(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, Product{ID: "1", Name: "A", Price: 10, Category: "x"}))

	// when: only the price is patched
	price := 20.0
	require.NoError(t, s.Update(ctx, "1", ProductPatch{Price: &price}))

	// then: untouched attributes retain their prior values
	found, err := s.GetByKey(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, Product{ID: "1", Name: "A", Price: 20, Category: "x"}, *found)
}

func Test_Memory_Update_EmptyPatchIsNoOp(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	product := Product{ID: "1", Name: "A", Price: 10, Category: "x"}
	require.NoError(t, s.Put(ctx, product))

	// when
	require.NoError(t, s.Update(ctx, "1", ProductPatch{}))

	// then
	found, err := s.GetByKey(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, product, *found)
}

func Test_Memory_Update_NotFound(t *testing.T) {
	s := NewMemoryStore()
	price := 20.0
	err := s.Update(context.Background(), "missing", ProductPatch{Price: &price})
	require.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func Test_Memory_DeleteByKey_Idempotent(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, Product{ID: "1"}))

	// when / then: deleting twice is not an error
	require.NoError(t, s.DeleteByKey(ctx, "1"))
	require.NoError(t, s.DeleteByKey(ctx, "1"))
	_, err := s.GetByKey(ctx, "1")
	require.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func Test_ProductPatch_IsZero(t *testing.T) {
	assert.True(t, ProductPatch{}.IsZero())
	name := "A"
	assert.False(t, ProductPatch{Name: &name}.IsZero())
}
