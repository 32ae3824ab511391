package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariusjb/holidaze-gateway/internal/domain"
	"github.com/mariusjb/holidaze-gateway/internal/integrations/holidaze"
)

type mockClient struct {
	getProfileFunc   func(ctx context.Context, token, name string) (*domain.Profile, error)
	updateAvatarFunc func(ctx context.Context, token, name string, avatar holidaze.AvatarInput) (*domain.Profile, error)

	updateCalls int
}

func (m *mockClient) GetProfile(ctx context.Context, token, name string) (*domain.Profile, error) {
	return m.getProfileFunc(ctx, token, name)
}

func (m *mockClient) UpdateAvatar(ctx context.Context, token, name string, avatar holidaze.AvatarInput) (*domain.Profile, error) {
	m.updateCalls++
	return m.updateAvatarFunc(ctx, token, name, avatar)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestService_Get_Success(t *testing.T) {
	client := &mockClient{
		getProfileFunc: func(ctx context.Context, token, name string) (*domain.Profile, error) {
			assert.Equal(t, "token-1", token)
			assert.Equal(t, "marius", name)
			return &domain.Profile{
				Name:         "marius",
				Email:        "marius@stud.noroff.no",
				VenueManager: true,
				VenueCount:   3,
				Avatar:       domain.Media{URL: "https://img.example/a.jpg"},
			}, nil
		},
	}
	svc := NewService(client, noopLogger{})

	resp, err := svc.Get(context.Background(), &GetProfileRequest{Token: "token-1", ProfileName: "marius"})

	require.NoError(t, err)
	assert.Equal(t, "marius", resp.Name)
	assert.True(t, resp.VenueManager)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, "https://img.example/a.jpg", resp.Avatar.URL)
	assert.Nil(t, resp.Banner)
}

func TestService_Get_NotFound(t *testing.T) {
	client := &mockClient{
		getProfileFunc: func(ctx context.Context, token, name string) (*domain.Profile, error) {
			return nil, holidaze.ErrNotFound
		},
	}
	svc := NewService(client, noopLogger{})

	_, err := svc.Get(context.Background(), &GetProfileRequest{Token: "token-1", ProfileName: "ghost"})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_UpdateAvatar_Success(t *testing.T) {
	client := &mockClient{
		updateAvatarFunc: func(ctx context.Context, token, name string, avatar holidaze.AvatarInput) (*domain.Profile, error) {
			assert.Equal(t, "https://img.example/new.jpg", avatar.URL)
			return &domain.Profile{
				Name:   name,
				Avatar: domain.Media{URL: avatar.URL, Alt: avatar.Alt},
			}, nil
		},
	}
	svc := NewService(client, noopLogger{})

	resp, err := svc.UpdateAvatar(context.Background(), &UpdateAvatarRequest{
		Token:       "token-1",
		ProfileName: "marius",
		URL:         "https://img.example/new.jpg",
		Alt:         "portrait",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, "https://img.example/new.jpg", resp.Avatar.URL)
}

func TestService_UpdateAvatar_InvalidURL_NoNetworkCall(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "relative", url: "/images/a.jpg"},
		{name: "wrong scheme", url: "ftp://img.example/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			svc := NewService(client, noopLogger{})

			_, err := svc.UpdateAvatar(context.Background(), &UpdateAvatarRequest{
				Token:       "token-1",
				ProfileName: "marius",
				URL:         tt.url,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, client.updateCalls)
		})
	}
}

func TestService_UpdateAvatar_MissingToken(t *testing.T) {
	client := &mockClient{}
	svc := NewService(client, noopLogger{})

	_, err := svc.UpdateAvatar(context.Background(), &UpdateAvatarRequest{
		ProfileName: "marius",
		URL:         "https://img.example/a.jpg",
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, client.updateCalls)
}
