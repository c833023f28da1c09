package user

import "passvault/internal/domain/user"

type registrationInput struct {
	Body user.RegistrationRequest
}

type registrationOutput struct {
	Body TokenResponse
}

type loginInput struct {
	Body user.LoginRequest
}

type loginOutput struct {
	Body TokenResponse
}

// TokenResponse is the success body of login and registration.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Status       string `json:"status"`
}

type editInput struct {
	Body user.EditRequest
}

type editOutput struct {
	Body StatusResponse
}

type deleteOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
