package models

// Partial-update descriptors for catalog entities. A nil field means
// "leave the stored value untouched"; in particular Images stays nil when
// an update request carries no new files, so existing media survives a
// text-only edit.

// ProductUpdate describes a partial update of a product.
type ProductUpdate struct {
	ID          int64
	Name        *string
	Description *string
	Price       *float64
	Images      *[]string
}

// CreationUpdate describes a partial update of a creation.
type CreationUpdate struct {
	ID          int64
	Name        *string
	Description *string
	Images      *[]string
}

// TutorialUpdate describes a partial update of a tutorial.
type TutorialUpdate struct {
	ID          int64
	Title       *string
	Description *string
	VideoURL    *string
	Thumbnail   *string
}
