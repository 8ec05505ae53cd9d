package store

import (
	"context"

	"github.com/amnayelamri/ResinByDounia/models"
)

// UserRepository is the credential store contract of the auth core.
// Lookups are side-effect-free; CreateUser exists only for the bootstrap
// path and is never reachable from unauthenticated request handlers.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProductRepository persists priced catalog items.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CreationRepository persists non-priced portfolio pieces.
type CreationRepository interface {
	ListCreations(ctx context.Context) ([]models.Creation, error)
	CreateCreation(ctx context.Context, creation models.Creation) (models.Creation, error)
	UpdateCreation(ctx context.Context, update models.CreationUpdate) (models.Creation, error)
	DeleteCreation(ctx context.Context, id int64) error
}

// TutorialRepository persists video tutorials.
type TutorialRepository interface {
	ListTutorials(ctx context.Context) ([]models.Tutorial, error)
	CreateTutorial(ctx context.Context, tutorial models.Tutorial) (models.Tutorial, error)
	UpdateTutorial(ctx context.Context, update models.TutorialUpdate) (models.Tutorial, error)
	DeleteTutorial(ctx context.Context, id int64) error
}

// MediaStore persists uploaded files outside the relational database and
// returns the public URL path they will be served from.
type MediaStore interface {
	SaveFile(ctx context.Context, kind string, upload models.FileUpload) (string, error)
}
