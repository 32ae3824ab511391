package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCreatesResolvableSession(t *testing.T) {
	m := NewManager()

	s := m.Login("kari", "tok-123", true)

	require.NotEmpty(t, s.ID)
	got, ok := m.Current(s.ID)
	require.True(t, ok)
	assert.Equal(t, "kari", got.ProfileName)
	assert.Equal(t, "tok-123", got.AccessToken)
	assert.True(t, got.VenueManager)
}

func TestLogoutRemovesSession(t *testing.T) {
	m := NewManager()
	s := m.Login("kari", "tok-123", false)

	m.Logout(s.ID)

	_, ok := m.Current(s.ID)
	assert.False(t, ok)

	// Logging out twice is harmless.
	m.Logout(s.ID)
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager()

	a := m.Login("kari", "tok-a", false)
	b := m.Login("ola", "tok-b", true)

	require.NotEqual(t, a.ID, b.ID)

	m.Logout(a.ID)

	_, ok := m.Current(a.ID)
	assert.False(t, ok)
	got, ok := m.Current(b.ID)
	require.True(t, ok)
	assert.Equal(t, "ola", got.ProfileName)
}

func TestCurrentUnknownID(t *testing.T) {
	m := NewManager()

	_, ok := m.Current("nope")
	assert.False(t, ok)
}
