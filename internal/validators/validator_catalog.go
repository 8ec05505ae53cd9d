package validators

import (
	"context"

	"github.com/amnayelamri/ResinByDounia/models"
)

// MaxImagesPerItem caps how many photos a single product or creation may
// carry, matching the admin form limit.
const MaxImagesPerItem = 5

// CatalogValidator validates catalog entities and their partial updates
// before they reach the persistence layer.
type CatalogValidator struct {
}

func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

func (v *CatalogValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Product:
		return v.validateProduct(value)
	case *models.Product:
		return v.validateProduct(*value)

	case models.Creation:
		return v.validateCreation(value)
	case *models.Creation:
		return v.validateCreation(*value)

	case models.Tutorial:
		return v.validateTutorial(value)
	case *models.Tutorial:
		return v.validateTutorial(*value)

	case models.ProductUpdate:
		return v.validateProductUpdate(value)
	case *models.ProductUpdate:
		return v.validateProductUpdate(*value)

	case models.CreationUpdate:
		return v.validateCreationUpdate(value)
	case *models.CreationUpdate:
		return v.validateCreationUpdate(*value)

	case models.TutorialUpdate:
		return v.validateTutorialUpdate(value)
	case *models.TutorialUpdate:
		return v.validateTutorialUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateProduct(product models.Product) error {
	if product.Name == "" {
		return ErrEmptyName
	}
	if product.Description == "" {
		return ErrEmptyDescription
	}
	if product.Price < 0 {
		return ErrNegativePrice
	}
	if len(product.Images) > MaxImagesPerItem {
		return ErrTooManyImages
	}

	return nil
}

func (v *CatalogValidator) validateCreation(creation models.Creation) error {
	if creation.Name == "" {
		return ErrEmptyName
	}
	if creation.Description == "" {
		return ErrEmptyDescription
	}
	if len(creation.Images) > MaxImagesPerItem {
		return ErrTooManyImages
	}

	return nil
}

func (v *CatalogValidator) validateTutorial(tutorial models.Tutorial) error {
	if tutorial.Title == "" {
		return ErrEmptyTitle
	}
	if tutorial.Description == "" {
		return ErrEmptyDescription
	}
	if tutorial.VideoURL == "" {
		return ErrEmptyVideo
	}

	return nil
}

func (v *CatalogValidator) validateProductUpdate(update models.ProductUpdate) error {
	if update.Name == nil && update.Description == nil && update.Price == nil && update.Images == nil {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil && *update.Name == "" {
		return ErrEmptyName
	}
	if update.Description != nil && *update.Description == "" {
		return ErrEmptyDescription
	}
	if update.Price != nil && *update.Price < 0 {
		return ErrNegativePrice
	}
	if update.Images != nil && len(*update.Images) > MaxImagesPerItem {
		return ErrTooManyImages
	}

	return nil
}

func (v *CatalogValidator) validateCreationUpdate(update models.CreationUpdate) error {
	if update.Name == nil && update.Description == nil && update.Images == nil {
		return ErrNoFieldsToUpdate
	}
	if update.Name != nil && *update.Name == "" {
		return ErrEmptyName
	}
	if update.Description != nil && *update.Description == "" {
		return ErrEmptyDescription
	}
	if update.Images != nil && len(*update.Images) > MaxImagesPerItem {
		return ErrTooManyImages
	}

	return nil
}

func (v *CatalogValidator) validateTutorialUpdate(update models.TutorialUpdate) error {
	if update.Title == nil && update.Description == nil && update.VideoURL == nil && update.Thumbnail == nil {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && *update.Title == "" {
		return ErrEmptyTitle
	}
	if update.Description != nil && *update.Description == "" {
		return ErrEmptyDescription
	}
	if update.VideoURL != nil && *update.VideoURL == "" {
		return ErrEmptyVideo
	}

	return nil
}
