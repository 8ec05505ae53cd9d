package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrEmptyVideo       = errors.New("video file is required")
	ErrTooManyImages    = errors.New("too many images")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
