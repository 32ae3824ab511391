package holidaze

import (
	"context"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// RegisterInput данные для регистрации нового аккаунта
type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	VenueManager bool   `json:"venueManager"`
}

// Login выполняет вход по email и паролю.
// Возвращает профиль и accessToken; токен для клиента непрозрачен и
// хранится только в сессии.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Data struct {
			profileDTO
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := c.do(ctx, "Login", http.MethodPost, "/auth/login", nil, "", body, &resp); err != nil {
		return nil, err
	}

	c.log.Info("Login: authenticated profile name=%s", resp.Data.Name)
	return &Credentials{
		Profile:     resp.Data.profileDTO.toDomain(),
		AccessToken: resp.Data.AccessToken,
	}, nil
}

// Register создает новый аккаунт. Вход выполняется отдельным вызовом Login,
// как это делал фронтенд.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	var resp struct {
		Data profileDTO `json:"data"`
	}
	if err := c.do(ctx, "Register", http.MethodPost, "/auth/register", nil, "", input, &resp); err != nil {
		return nil, err
	}

	profile := resp.Data.toDomain()
	c.log.Info("Register: created profile name=%s manager=%t", profile.Name, profile.VenueManager)
	return &profile, nil
}
