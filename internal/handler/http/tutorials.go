package http

import (
	"net/http"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// listTutorials handles `GET /api/tutorials`. The route is public: it backs
// the tutorials page of the website. Tutorials are returned newest first.
func (h *Handler) listTutorials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tutorials, err := h.services.CatalogService.ListTutorials(r.Context())
	if err != nil {
		log.Err(err).Msg("error occurred during listing tutorials")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, tutorials, http.StatusOK)
}

// createTutorial handles `POST /api/tutorials` (admin only).
//
// The request body is a multipart form with text fields "title" and
// "description", a required file under "video" and an optional file under
// "thumbnail".
func (h *Handler) createTutorial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	video, closeVideo, err := openFormFile(r, videoFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded video")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := openFormFile(r, thumbnailFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded thumbnail")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeThumbnail()

	tutorial, err := h.services.CatalogService.CreateTutorial(r.Context(), models.TutorialInput{
		Title:       r.FormValue(titleFormField),
		Description: r.FormValue(descriptionFormField),
		Video:       video,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, tutorial, http.StatusCreated)
}

// updateTutorial handles `PUT /api/tutorials/{id}` (admin only). Omitted
// form fields and files keep their stored values.
func (h *Handler) updateTutorial(w http.ResponseWriter, r *http.Request) {
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

	video, closeVideo, err := openFormFile(r, videoFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded video")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := openFormFile(r, thumbnailFormField)
	if err != nil {
		log.Err(err).Msg("error opening uploaded thumbnail")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}
	defer closeThumbnail()

	tutorial, err := h.services.CatalogService.UpdateTutorial(r.Context(), models.TutorialUpdateInput{
		ID:          id,
		Title:       formValue(r, titleFormField),
		Description: formValue(r, descriptionFormField),
		Video:       video,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, tutorial, http.StatusOK)
}

// deleteTutorial handles `DELETE /api/tutorials/{id}` (admin only).
func (h *Handler) deleteTutorial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := itemIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, http.StatusBadRequest)
		return
	}

	if err = h.services.CatalogService.DeleteTutorial(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during deleting tutorial")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Tutorial deleted"}, http.StatusOK)
}
