package resolver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	perrors "github.com/shopfabrik/product-api/internal/errors"
	"github.com/shopfabrik/product-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProductStore is a mock implementation of the ProductStore interface
type mockProductStore struct {
	product  *store.Product
	products []store.Product
	error    error

	puts    []store.Product
	patches map[string]store.ProductPatch
	deletes []string
}

func (m *mockProductStore) Put(_ context.Context, product store.Product) error {
	m.puts = append(m.puts, product)
	return m.error
}

func (m *mockProductStore) GetByKey(_ context.Context, _ string) (*store.Product, error) {
	return m.product, m.error
}

func (m *mockProductStore) ScanAll(_ context.Context) ([]store.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) QueryByCategory(_ context.Context, _ string) ([]store.Product, error) {
	return m.products, m.error
}

func (m *mockProductStore) Update(_ context.Context, id string, patch store.ProductPatch) error {
	if m.patches == nil {
		m.patches = make(map[string]store.ProductPatch)
	}
	m.patches[id] = patch
	return m.error
}

func (m *mockProductStore) DeleteByKey(_ context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	return m.error
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_CreateProduct_GeneratesID(t *testing.T) {
	// given
	mockStore := &mockProductStore{}
	r := New(mockStore, testLogger())
	input := store.Product{Name: "Shoe", Description: "d", Price: 9.99, Category: "shoes"}

	// when: two creates without an explicit id
	first := r.CreateProduct(context.Background(), input)
	second := r.CreateProduct(context.Background(), input)

	// then: both ids are freshly generated, non-empty and distinct
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	_, err := uuid.Parse(first.ID)
	assert.NoError(t, err, "generated id should be a UUID")

	// and: the persisted products carry the generated ids
	require.Len(t, mockStore.puts, 2)
	assert.Equal(t, first.ID, mockStore.puts[0].ID)
	assert.Equal(t, second.ID, mockStore.puts[1].ID)
}

func Test_CreateProduct_PreservesExplicitID(t *testing.T) {
	// given
	mockStore := &mockProductStore{}
	r := New(mockStore, testLogger())
	input := store.Product{ID: "p-42", Name: "Shoe", Description: "d", Price: 9.99, Category: "shoes"}

	// when
	created := r.CreateProduct(context.Background(), input)

	// then
	require.NotNil(t, created)
	assert.Equal(t, "p-42", created.ID)
	require.Len(t, mockStore.puts, 1)
	assert.Equal(t, "p-42", mockStore.puts[0].ID)
}

func Test_CreateProduct_StoreFailure(t *testing.T) {
	// given
	mockStore := &mockProductStore{error: perrors.NewStoreError("put", errors.New("throttled"))}
	r := New(mockStore, testLogger())

	// when
	created := r.CreateProduct(context.Background(), store.Product{Name: "Shoe", Description: "d", Category: "shoes"})

	// then: the failure is swallowed into an absent result
	assert.Nil(t, created)
}

func Test_ProductByID(t *testing.T) {
	product := &store.Product{ID: "1", Name: "Shoe"}
	testCases := []struct {
		name      string
		mockStore *mockProductStore
		expected  *store.Product
	}{
		{
			name:      "Success - product found",
			mockStore: &mockProductStore{product: product},
			expected:  product,
		},
		{
			name:      "Absent - product not found",
			mockStore: &mockProductStore{error: perrors.ErrProductNotFound},
			expected:  nil,
		},
		{
			name:      "Absent - store failure swallowed",
			mockStore: &mockProductStore{error: perrors.NewStoreError("get", errors.New("connection reset"))},
			expected:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			r := New(tc.mockStore, testLogger())
			// when
			found := r.ProductByID(context.Background(), "1")
			// then
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ListProducts(t *testing.T) {
	products := []store.Product{{ID: "1"}, {ID: "2"}}
	testCases := []struct {
		name      string
		mockStore *mockProductStore
		expected  []store.Product
	}{
		{
			name:      "Success - products found",
			mockStore: &mockProductStore{products: products},
			expected:  products,
		},
		{
			name:      "Success - empty collection",
			mockStore: &mockProductStore{products: []store.Product{}},
			expected:  []store.Product{},
		},
		{
			name:      "Empty - store failure swallowed",
			mockStore: &mockProductStore{error: perrors.NewStoreError("scan", errors.New("timeout"))},
			expected:  []store.Product{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			r := New(tc.mockStore, testLogger())
			// when
			list := r.ListProducts(context.Background())
			// then
			assert.Equal(t, tc.expected, list)
		})
	}
}

func Test_ProductsByCategory(t *testing.T) {
	products := []store.Product{{ID: "1", Category: "shoes"}}
	testCases := []struct {
		name      string
		mockStore *mockProductStore
		expected  []store.Product
	}{
		{
			name:      "Success - category matched",
			mockStore: &mockProductStore{products: products},
			expected:  products,
		},
		{
			name:      "Empty - store failure swallowed",
			mockStore: &mockProductStore{error: perrors.NewStoreError("query", errors.New("index offline"))},
			expected:  []store.Product{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			r := New(tc.mockStore, testLogger())
			// when
			list := r.ProductsByCategory(context.Background(), "shoes")
			// then
			assert.Equal(t, tc.expected, list)
		})
	}
}

func Test_UpdateProduct(t *testing.T) {
	price := 20.0
	update := store.ProductUpdate{
		ID:           "1",
		ProductPatch: store.ProductPatch{Price: &price},
	}

	t.Run("Success - echoes the caller-supplied update", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{}
		r := New(mockStore, testLogger())
		// when
		echoed := r.UpdateProduct(context.Background(), update)
		// then
		require.NotNil(t, echoed)
		assert.Equal(t, update, *echoed)
		// and: the store received the patch addressed to the id
		require.Contains(t, mockStore.patches, "1")
		assert.Equal(t, update.ProductPatch, mockStore.patches["1"])
	})

	t.Run("Absent - product not found", func(t *testing.T) {
		// given
		r := New(&mockProductStore{error: perrors.ErrProductNotFound}, testLogger())
		// when
		echoed := r.UpdateProduct(context.Background(), update)
		// then
		assert.Nil(t, echoed)
	})

	t.Run("Absent - store failure swallowed", func(t *testing.T) {
		// given
		r := New(&mockProductStore{error: perrors.NewStoreError("update", errors.New("throttled"))}, testLogger())
		// when
		echoed := r.UpdateProduct(context.Background(), update)
		// then
		assert.Nil(t, echoed)
	})
}

func Test_DeleteProduct(t *testing.T) {
	t.Run("Success - returns the id, absence is not an error", func(t *testing.T) {
		// given
		mockStore := &mockProductStore{}
		r := New(mockStore, testLogger())
		// when
		deleted := r.DeleteProduct(context.Background(), "missing-id")
		// then
		require.NotNil(t, deleted)
		assert.Equal(t, "missing-id", *deleted)
		assert.Equal(t, []string{"missing-id"}, mockStore.deletes)
	})

	t.Run("Absent - store failure swallowed", func(t *testing.T) {
		// given
		r := New(&mockProductStore{error: perrors.NewStoreError("delete", errors.New("throttled"))}, testLogger())
		// when
		deleted := r.DeleteProduct(context.Background(), "1")
		// then
		assert.Nil(t, deleted)
	})
}
