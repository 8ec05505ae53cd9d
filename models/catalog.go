package models

import "time"

// Product is a priced catalog item offered for sale.
type Product struct {
	// ID is the internal unique identifier of the product.
	ID int64 `json:"id"`

	// Name is the display name shown in the public catalog.
	Name string `json:"name"`

	// Description is the free-form text shown on the product page.
	Description string `json:"description"`

	// Price is the product price in the shop currency.
	Price float64 `json:"price"`

	// Images holds public URL paths (under /uploads/products/) of the
	// product photos, in upload order.
	Images []string `json:"images"`

	// CreatedAt orders the public listing (newest first).
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// Creation is a non-priced portfolio piece shown in the gallery.
type Creation struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Creation model.
func (c Creation) TableName() string {
	return "creations"
}

// Tutorial is a video lesson published on the tutorials page.
type Tutorial struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// VideoURL is the public URL path of the uploaded video file.
	VideoURL string `json:"videoUrl"`

	// Thumbnail is the public URL path of the preview image, if any.
	Thumbnail string `json:"thumbnail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Tutorial model.
func (t Tutorial) TableName() string {
	return "tutorials"
}
