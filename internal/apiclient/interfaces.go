// Package apiclient provides a typed HTTP client for the REST API, used by
// the atelierctl administration tool. It wraps resty for transport and keeps
// the signed-in session token in a small local sqlite database so that
// repeated invocations do not need to log in again.
package apiclient

import (
	"context"

	"github.com/amnayelamri/ResinByDounia/models"
)

// AdminClient is the API surface atelierctl works against.
type AdminClient interface {
	// Login authenticates with the API and remembers the issued token for
	// subsequent calls on this client instance.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// SetToken installs a previously saved token, skipping Login.
	SetToken(token string)

	// Token returns the currently installed bearer token, if any.
	Token() string

	Health(ctx context.Context) (models.MessageResponse, error)

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

// SessionStore persists the signed-in session between atelierctl runs.
type SessionStore interface {
	SaveSession(ctx context.Context, email, token string) error
	LoadSession(ctx context.Context) (Session, error)
	ClearSession(ctx context.Context) error
	Close() error
}
