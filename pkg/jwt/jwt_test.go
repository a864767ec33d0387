package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)
}

func TestGenerateAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "reader@example.com", []string{"ROLE_USER"})
	require.NoError(t, err)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.True(t, claims.HasRole("ROLE_USER"))
	assert.False(t, claims.HasRole("ROLE_ADMIN"))
	assert.Equal(t, "42", claims.Subject)
}

func TestParseToken_RejectsRefreshToken(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(1, "a@b.com", nil)
	require.NoError(t, err)

	_, err = m.ParseToken(pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	pair, err := m.GenerateToken(1, "a@b.com", nil)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	pair, err := newTestManager().GenerateToken(1, "a@b.com", nil)
	require.NoError(t, err)

	other := NewManager("another-secret", time.Hour, time.Hour)
	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshAccessToken(t *testing.T) {
	m := newTestManager()
	pair, err := m.GenerateToken(7, "admin@example.com", []string{"ROLE_USER", "ROLE_ADMIN"})
	require.NoError(t, err)

	access, claims, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	parsed, err := m.ParseToken(access)
	require.NoError(t, err)
	assert.True(t, parsed.HasRole("ROLE_ADMIN"))

	_, _, err = m.RefreshAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "Access Token不能用于刷新")
}
