package service

import (
	"context"

	"github.com/amnayelamri/ResinByDounia/models"
)

// AuthService is the authentication core: credential verification, token
// issuance and verification, and the idempotent admin bootstrap.
type AuthService interface {
	// Login verifies the email/password pair against the credential store.
	// Unknown email and wrong password are indistinguishable to callers:
	// both return ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed, time-limited token for the given user.
	// The caller must have verified the password beforehand (see Login).
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the decoded
	// identity claims. Any failure — bad signature, malformed structure,
	// wrong issuer, or expiry — yields ErrInvalidToken.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureAdmin guarantees that the administrative account with the
	// given email exists, creating it with the given password when absent.
	// Safe to call from concurrently starting processes.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// CatalogService manages the three public content collections and their
// uploaded media.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, input models.ProductUpdateInput) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCreations(ctx context.Context) ([]models.Creation, error)
	CreateCreation(ctx context.Context, input models.CreationInput) (models.Creation, error)
	UpdateCreation(ctx context.Context, input models.CreationUpdateInput) (models.Creation, error)
	DeleteCreation(ctx context.Context, id int64) error

	ListTutorials(ctx context.Context) ([]models.Tutorial, error)
	CreateTutorial(ctx context.Context, input models.TutorialInput) (models.Tutorial, error)
	UpdateTutorial(ctx context.Context, input models.TutorialUpdateInput) (models.Tutorial, error)
	DeleteTutorial(ctx context.Context, id int64) error
}
