package models

// Input payloads assembled by the transport layer from multipart admin
// forms. File uploads are carried separately from text fields because the
// media store assigns the public URLs only at persistence time.

// ProductInput carries the fields of a new product plus its photo uploads.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Images      []FileUpload
}

// ProductUpdateInput carries a partial product edit. Nil text fields are
// left untouched; an empty Images slice keeps the stored photos.
type ProductUpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Price       *float64
	Images      []FileUpload
}

// CreationInput carries the fields of a new creation plus its photo uploads.
type CreationInput struct {
	Name        string
	Description string
	Images      []FileUpload
}

// CreationUpdateInput carries a partial creation edit.
type CreationUpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Images      []FileUpload
}

// TutorialInput carries the fields of a new tutorial plus its media uploads.
// Video is required; Thumbnail is optional.
type TutorialInput struct {
	Title       string
	Description string
	Video       *FileUpload
	Thumbnail   *FileUpload
}

// TutorialUpdateInput carries a partial tutorial edit. Nil file pointers
// keep the stored media.
type TutorialUpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	Video       *FileUpload
	Thumbnail   *FileUpload
}
