package http

import (
	"net/http"

	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// health handles `GET /` and reports that the API is up. The message body
// is what the public frontend pings during deploys.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Resin by Dounia API is running!"}, http.StatusOK)
}
