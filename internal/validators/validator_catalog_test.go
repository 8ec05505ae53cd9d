package validators

import (
	"context"
	"testing"

	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogValidator_Product(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		product models.Product
		wantErr error
	}{
		{
			name:    "valid",
			product: models.Product{Name: "Tray", Description: "resin tray", Price: 45},
			wantErr: nil,
		},
		{
			name:    "free product is allowed",
			product: models.Product{Name: "Sample", Description: "giveaway", Price: 0},
			wantErr: nil,
		},
		{
			name:    "empty name",
			product: models.Product{Description: "resin tray", Price: 45},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty description",
			product: models.Product{Name: "Tray", Price: 45},
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "negative price",
			product: models.Product{Name: "Tray", Description: "resin tray", Price: -1},
			wantErr: ErrNegativePrice,
		},
		{
			name: "too many images",
			product: models.Product{
				Name:        "Tray",
				Description: "resin tray",
				Images:      []string{"1", "2", "3", "4", "5", "6"},
			},
			wantErr: ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.product)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogValidator_Tutorial(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.Tutorial{Title: "Pouring", Description: "basics"})
	assert.ErrorIs(t, err, ErrEmptyVideo)

	err = v.Validate(ctx, models.Tutorial{Title: "Pouring", Description: "basics", VideoURL: "/uploads/tutorials/a.mp4"})
	assert.NoError(t, err)
}

func TestCatalogValidator_ProductUpdate(t *testing.T) {
	v := NewCatalogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProductUpdate{ID: 1}), ErrNoFieldsToUpdate)

	empty := ""
	assert.ErrorIs(t, v.Validate(ctx, models.ProductUpdate{ID: 1, Name: &empty}), ErrEmptyName)

	name := "Tray"
	assert.NoError(t, v.Validate(ctx, models.ProductUpdate{ID: 1, Name: &name}))

	negative := -0.5
	assert.ErrorIs(t, v.Validate(ctx, models.ProductUpdate{ID: 1, Price: &negative}), ErrNegativePrice)
}

func TestCatalogValidator_UnsupportedType(t *testing.T) {
	v := NewCatalogValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
