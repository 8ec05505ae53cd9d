package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/internal/store"
	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// listProducts handles `GET /api/products`. The route is public: it backs
// the shop page of the website. Products are returned newest first.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.CatalogService.ListProducts(r.Context())
	if err != nil {
		log.Err(err).Msg("error occurred during listing products")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

// createProduct handles `POST /api/products` (admin only).
//
// The request body is a multipart form with text fields "name",
// "description" and "price", plus up to five files under "images".
// On success the stored product is returned with HTTP 201 Created.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue(priceFormField), 64)
	if err != nil {
		log.Err(err).Msg("invalid product price was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid price"}, http.StatusBadRequest)
		return
	}

	images, closeFiles, err := openFormFiles(r, imagesFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded images")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeFiles()

	product, err := h.services.CatalogService.CreateProduct(r.Context(), models.ProductInput{
		Name:        r.FormValue(nameFormField),
		Description: r.FormValue(descriptionFormField),
		Price:       price,
		Images:      images,
	})
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusCreated)
}

// updateProduct handles `PUT /api/products/{id}` (admin only).
//
// All form fields are optional; omitted fields keep their stored values.
// Uploading files under "images" replaces the whole image list.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	input := models.ProductUpdateInput{
		ID:          id,
		Name:        formValue(r, nameFormField),
		Description: formValue(r, descriptionFormField),
	}

	if rawPrice := formValue(r, priceFormField); rawPrice != nil {
		price, err := strconv.ParseFloat(*rawPrice, 64)
		if err != nil {
			log.Err(err).Msg("invalid product price was passed")
			utils.WriteJSON(w, models.MessageResponse{Message: "invalid price"}, http.StatusBadRequest)
			return
		}
		input.Price = &price
	}

	images, closeFiles, err := openFormFiles(r, imagesFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded images")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeFiles()
	input.Images = images

	product, err := h.services.CatalogService.UpdateProduct(r.Context(), input)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// deleteProduct handles `DELETE /api/products/{id}` (admin only). Deleting
// an already-deleted product succeeds with the same response.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	if err = h.services.CatalogService.DeleteProduct(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during deleting product")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Product deleted"}, http.StatusOK)
}

// writeCatalogError maps service-layer errors of the catalog endpoints to
// HTTP responses.
func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid catalog data was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
	case errors.Is(err, store.ErrProductNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: "Product not found"}, http.StatusNotFound)
	case errors.Is(err, store.ErrCreationNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: "Creation not found"}, http.StatusNotFound)
	case errors.Is(err, store.ErrTutorialNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: "Tutorial not found"}, http.StatusNotFound)
	default:
		log.Err(err).Msg("error occurred during catalog operation")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
	}
}
