package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/go-chi/chi/v5"
)

// maxMultipartMemory caps how much of a multipart body is buffered in
// memory before spilling to temporary files on disk.
const maxMultipartMemory = 32 << 20 // 32 MiB

// Multipart form field names shared by the catalog endpoints.
const (
	nameFormField        = "name"
	titleFormField       = "title"
	descriptionFormField = "description"
	priceFormField       = "price"
	imagesFormField      = "images"
	videoFormField       = "video"
	thumbnailFormField   = "thumbnail"
)

var errInvalidItemID = errors.New("invalid item id in URL")

// itemIDFromURL extracts and parses the `{id}` URL parameter of the
// matched chi route.
func itemIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidItemID, err)
	}

	return id, nil
}

// formValue returns a pointer to the first value of the given multipart
// form field, or nil when the field was not submitted at all. The pointer
// distinguishes "field absent" from "field set to an empty string", which
// matters for partial updates.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}

	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}

// openFormFiles opens every uploaded file of the given multipart form field
// and returns them as streaming uploads, together with a cleanup function
// that closes all opened files. The cleanup function must be called once the
// uploads have been consumed.
func openFormFiles(r *http.Request, key string) ([]models.FileUpload, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	headers := r.MultipartForm.File[key]
	uploads := make([]models.FileUpload, 0, len(headers))
	closers := make([]func() error, 0, len(headers))

	closeAll := func() {
		for _, close := range closers {
			close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("error opening uploaded file %q: %w", header.Filename, err)
		}

		closers = append(closers, file.Close)
		uploads = append(uploads, models.FileUpload{
			Name:    header.Filename,
			Content: file,
		})
	}

	return uploads, closeAll, nil
}

// openFormFile opens a single-file multipart form field. It returns nil
// (and a no-op cleanup) when the field was not submitted.
func openFormFile(r *http.Request, key string) (*models.FileUpload, func(), error) {
	uploads, closeAll, err := openFormFiles(r, key)
	if err != nil {
		return nil, func() {}, err
	}

	if len(uploads) == 0 {
		closeAll()
		return nil, func() {}, nil
	}

	return &uploads[0], closeAll, nil
}
