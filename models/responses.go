package models

// MessageResponse is the generic JSON envelope used for error and status
// messages, e.g. {"message":"Invalid credentials"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the successful login payload: the signed token plus the
// minimal public profile of the authenticated user. The password hash is
// never part of this structure.
type LoginResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// LoginRequest is the JSON body accepted by the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
