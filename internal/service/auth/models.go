package auth

import "github.com/mariusjb/holidaze-gateway/internal/domain"

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse результат входа: session ID и профиль.
// Access token наружу не уходит.
type LoginResponse struct {
	SessionID string         `json:"sessionId"`
	Profile   domain.Profile `json:"profile"`
}

// RegisterRequest запрос на регистрацию аккаунта
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// RegisterResponse результат регистрации
type RegisterResponse struct {
	Profile domain.Profile `json:"profile"`
}
