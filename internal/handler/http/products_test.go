package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/internal/store"
	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartRequest builds a multipart/form-data request with the given text
// fields and file fields (field name → file name → content).
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, entries := range files {
		for name, content := range entries {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte(content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers can be exercised without the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// listProducts
// ─────────────────────────────────────────────

func TestListProducts_Success(t *testing.T) {
	catalog := &mockCatalogService{
		listProductsFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{
				{ID: 2, Name: "Ocean tray", Price: 45, Images: []string{"/uploads/products/a.jpg"}},
				{ID: 1, Name: "Coasters", Price: 20, Images: []string{}},
			}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.listProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Ocean tray", products[0].Name)
}

func TestListProducts_ServerError(t *testing.T) {
	catalog := &mockCatalogService{
		listProductsFn: func(_ context.Context) ([]models.Product, error) {
			return nil, fmt.Errorf("db down")
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.listProducts(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Server error", resp.Message)
}

// ─────────────────────────────────────────────
// createProduct
// ─────────────────────────────────────────────

func TestCreateProduct_Success(t *testing.T) {
	catalog := &mockCatalogService{
		createProductFn: func(_ context.Context, input models.ProductInput) (models.Product, error) {
			assert.Equal(t, "Ocean tray", input.Name)
			assert.Equal(t, 45.5, input.Price)
			assert.Len(t, input.Images, 2)
			return models.Product{ID: 1, Name: input.Name, Price: input.Price}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{"name": "Ocean tray", "description": "resin tray", "price": "45.5"},
		map[string]map[string]string{"images": {"a.jpg": "img-a", "b.jpg": "img-b"}},
	)
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, int64(1), product.ID)
}

func TestCreateProduct_InvalidPrice(t *testing.T) {
	h := newTestHandler(t, nil, &mockCatalogService{})

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{"name": "Tray", "description": "resin", "price": "not-a-number"},
		nil,
	)
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_ValidationError(t *testing.T) {
	catalog := &mockCatalogService{
		createProductFn: func(_ context.Context, _ models.ProductInput) (models.Product, error) {
			return models.Product{}, fmt.Errorf("%w: empty name", service.ErrInvalidDataProvided)
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPost, "/api/products",
		map[string]string{"name": "", "description": "resin", "price": "10"},
		nil,
	)
	rec := httptest.NewRecorder()

	h.createProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updateProduct
// ─────────────────────────────────────────────

func TestUpdateProduct_PartialFields(t *testing.T) {
	catalog := &mockCatalogService{
		updateProductFn: func(_ context.Context, input models.ProductUpdateInput) (models.Product, error) {
			assert.Equal(t, int64(3), input.ID)
			require.NotNil(t, input.Name)
			assert.Equal(t, "Renamed tray", *input.Name)
			assert.Nil(t, input.Description, "absent form fields must stay nil")
			assert.Nil(t, input.Price)
			assert.Empty(t, input.Images)
			return models.Product{ID: 3, Name: *input.Name}, nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPut, "/api/products/3",
		map[string]string{"name": "Renamed tray"},
		nil,
	)
	req = withURLParam(req, "id", "3")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	catalog := &mockCatalogService{
		updateProductFn: func(_ context.Context, _ models.ProductUpdateInput) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := multipartRequest(t, http.MethodPut, "/api/products/99",
		map[string]string{"name": "Ghost"},
		nil,
	)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product not found", resp.Message)
}

func TestUpdateProduct_BadID(t *testing.T) {
	h := newTestHandler(t, nil, &mockCatalogService{})

	req := multipartRequest(t, http.MethodPut, "/api/products/abc",
		map[string]string{"name": "Tray"},
		nil,
	)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.updateProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// deleteProduct
// ─────────────────────────────────────────────

func TestDeleteProduct_Success(t *testing.T) {
	var deletedID int64
	catalog := &mockCatalogService{
		deleteProductFn: func(_ context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := newTestHandler(t, nil, catalog)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/products/5", nil), "id", "5")
	rec := httptest.NewRecorder()

	h.deleteProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), deletedID)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product deleted", resp.Message)
}

func TestDeleteProduct_RepeatedDeleteSucceeds(t *testing.T) {
	catalog := &mockCatalogService{
		deleteProductFn: func(_ context.Context, _ int64) error { return nil },
	}
	h := newTestHandler(t, nil, catalog)

	for i := 0; i < 2; i++ {
		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/products/5", nil), "id", "5")
		rec := httptest.NewRecorder()

		h.deleteProduct(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
