// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	ensureAdminFn func(ctx context.Context, email, password string) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	return m.ensureAdminFn(ctx, email, password)
}

// ─────────────────────────────────────────────
// Mock CatalogService
// ─────────────────────────────────────────────

// mockCatalogService implements service.CatalogService for unit tests.
// Unset method fields fall back to empty results.
type mockCatalogService struct {
	listProductsFn  func(ctx context.Context) ([]models.Product, error)
	createProductFn func(ctx context.Context, input models.ProductInput) (models.Product, error)
	updateProductFn func(ctx context.Context, input models.ProductUpdateInput) (models.Product, error)
	deleteProductFn func(ctx context.Context, id int64) error

	listCreationsFn  func(ctx context.Context) ([]models.Creation, error)
	createCreationFn func(ctx context.Context, input models.CreationInput) (models.Creation, error)
	updateCreationFn func(ctx context.Context, input models.CreationUpdateInput) (models.Creation, error)
	deleteCreationFn func(ctx context.Context, id int64) error

	listTutorialsFn  func(ctx context.Context) ([]models.Tutorial, error)
	createTutorialFn func(ctx context.Context, input models.TutorialInput) (models.Tutorial, error)
	updateTutorialFn func(ctx context.Context, input models.TutorialUpdateInput) (models.Tutorial, error)
	deleteTutorialFn func(ctx context.Context, id int64) error
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if m.listProductsFn == nil {
		return []models.Product{}, nil
	}
	return m.listProductsFn(ctx)
}

func (m *mockCatalogService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	return m.createProductFn(ctx, input)
}

func (m *mockCatalogService) UpdateProduct(ctx context.Context, input models.ProductUpdateInput) (models.Product, error) {
	return m.updateProductFn(ctx, input)
}

func (m *mockCatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return m.deleteProductFn(ctx, id)
}

func (m *mockCatalogService) ListCreations(ctx context.Context) ([]models.Creation, error) {
	if m.listCreationsFn == nil {
		return []models.Creation{}, nil
	}
	return m.listCreationsFn(ctx)
}

func (m *mockCatalogService) CreateCreation(ctx context.Context, input models.CreationInput) (models.Creation, error) {
	return m.createCreationFn(ctx, input)
}

func (m *mockCatalogService) UpdateCreation(ctx context.Context, input models.CreationUpdateInput) (models.Creation, error) {
	return m.updateCreationFn(ctx, input)
}

func (m *mockCatalogService) DeleteCreation(ctx context.Context, id int64) error {
	return m.deleteCreationFn(ctx, id)
}

func (m *mockCatalogService) ListTutorials(ctx context.Context) ([]models.Tutorial, error) {
	if m.listTutorialsFn == nil {
		return []models.Tutorial{}, nil
	}
	return m.listTutorialsFn(ctx)
}

func (m *mockCatalogService) CreateTutorial(ctx context.Context, input models.TutorialInput) (models.Tutorial, error) {
	return m.createTutorialFn(ctx, input)
}

func (m *mockCatalogService) UpdateTutorial(ctx context.Context, input models.TutorialUpdateInput) (models.Tutorial, error) {
	return m.updateTutorialFn(ctx, input)
}

func (m *mockCatalogService) DeleteTutorial(ctx context.Context, id int64) error {
	return m.deleteTutorialFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks.
func newTestHandler(t *testing.T, auth service.AuthService, catalog service.CatalogService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if catalog == nil {
		catalog = &mockCatalogService{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		CatalogService: catalog,
	}
	return NewHandler(svcs, t.TempDir(), logger.Nop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	if h == nil {
		t.Fatal("expected non-nil handler")
	}
	if h.services == nil {
		t.Error("expected services to be wired")
	}
}
