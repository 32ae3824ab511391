package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
)

// AvatarInput новый аватар профиля
type AvatarInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// GetProfile получает профиль по имени пользователя
func (c *Client) GetProfile(ctx context.Context, token, name string) (*domain.Profile, error) {
	var resp struct {
		Data profileDTO `json:"data"`
	}
	path := "/holidaze/profiles/" + url.PathEscape(name)
	if err := c.do(ctx, "GetProfile", http.MethodGet, path, nil, token, nil, &resp); err != nil {
		return nil, err
	}

	profile := resp.Data.toDomain()
	return &profile, nil
}

// UpdateAvatar обновляет аватар профиля
func (c *Client) UpdateAvatar(ctx context.Context, token, name string, avatar AvatarInput) (*domain.Profile, error) {
	body := struct {
		Avatar AvatarInput `json:"avatar"`
	}{Avatar: avatar}

	var resp struct {
		Data profileDTO `json:"data"`
	}
	path := "/holidaze/profiles/" + url.PathEscape(name)
	if err := c.do(ctx, "UpdateAvatar", http.MethodPut, path, nil, token, body, &resp); err != nil {
		return nil, err
	}

	profile := resp.Data.toDomain()
	return &profile, nil
}
