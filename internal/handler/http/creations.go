package http

import (
	"net/http"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// listCreations handles `GET /api/creations`. The route is public: it backs
// the gallery page of the website. Creations are returned newest first.
func (h *Handler) listCreations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creations, err := h.services.CatalogService.ListCreations(r.Context())
	if err != nil {
		log.Err(err).Msg("error occurred during listing creations")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, creations, http.StatusOK)
}

// createCreation handles `POST /api/creations` (admin only).
//
// The request body is a multipart form with text fields "name" and
// "description", plus up to five files under "images". Creations carry no
// price: the gallery is a portfolio, not a shop.
func (h *Handler) createCreation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	images, closeFiles, err := openFormFiles(r, imagesFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded images")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeFiles()

	creation, err := h.services.CatalogService.CreateCreation(r.Context(), models.CreationInput{
		Name:        r.FormValue(nameFormField),
		Description: r.FormValue(descriptionFormField),
		Images:      images,
	})
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, creation, http.StatusCreated)
}

// updateCreation handles `PUT /api/creations/{id}` (admin only). Omitted
// form fields keep their stored values; uploaded files replace the whole
// image list.
func (h *Handler) updateCreation(w http.ResponseWriter, r *http.Request) {
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

	images, closeFiles, err := openFormFiles(r, imagesFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded images")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeFiles()

	creation, err := h.services.CatalogService.UpdateCreation(r.Context(), models.CreationUpdateInput{
		ID:          id,
		Name:        formValue(r, nameFormField),
		Description: formValue(r, descriptionFormField),
		Images:      images,
	})
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, creation, http.StatusOK)
}

// deleteCreation handles `DELETE /api/creations/{id}` (admin only).
func (h *Handler) deleteCreation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	if err = h.services.CatalogService.DeleteCreation(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during deleting creation")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Creation deleted"}, http.StatusOK)
}
