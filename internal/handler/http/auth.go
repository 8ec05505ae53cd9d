package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/service"
	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// login handles `POST /api/auth/login`.
//
// It decodes the JSON credentials from the request body, verifies them via
// [service.AuthService.Login], and on success issues a signed JWT.
//
// Responses:
//   - 200 OK with [models.LoginResponse] on success.
//   - 400 Bad Request with message "Invalid credentials" when the email is
//     unknown, the password does not match, or either field is empty. The
//     body is deliberately identical in all three cases so that callers
//     cannot tell registered emails apart from unknown ones.
//   - 500 Internal Server Error with message "Server error" on storage or
//     token-signing failures.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidCredentials}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("email", request.Email).Msg("login rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: msgInvalidCredentials}, http.StatusBadRequest)
		default:
			log.Err(err).Msg("error occurred during login")
			utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error occurred during token creation")
		utils.WriteJSON(w, models.MessageResponse{Message: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  user.PublicProfile(),
	}, http.StatusOK)
}
