package profile

import "github.com/mariusjb/holidaze-gateway/internal/domain"

// GetProfileRequest запрос на получение профиля
type GetProfileRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
}

// UpdateAvatarRequest запрос на смену аватара профиля
type UpdateAvatarRequest struct {
	Token       string `json:"-"`
	ProfileName string `json:"profileName"`
	URL         string `json:"url"`
	Alt         string `json:"alt"`
}

// ProfileResponse представление профиля
type ProfileResponse struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Bio          string        `json:"bio,omitempty"`
	Avatar       *domain.Media `json:"avatar,omitempty"`
	Banner       *domain.Media `json:"banner,omitempty"`
	VenueManager bool          `json:"venueManager"`
	VenueCount   int           `json:"venueCount"`
	BookingCount int           `json:"bookingCount"`
}

// fromDomainProfile конвертирует доменный профиль в response модель
func fromDomainProfile(p domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		Name:         p.Name,
		Email:        p.Email,
		Bio:          p.Bio,
		VenueManager: p.VenueManager,
		VenueCount:   p.VenueCount,
		BookingCount: p.BookingCount,
	}
	if p.Avatar.URL != "" {
		avatar := p.Avatar
		resp.Avatar = &avatar
	}
	if p.Banner.URL != "" {
		banner := p.Banner
		resp.Banner = &banner
	}
	return resp
}
