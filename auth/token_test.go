package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndExtractToken(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := CreateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	uid, err := ExtractTokenID(req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
}

func TestExtractTokenWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ExtractTokenID(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	Configure("first-secret", time.Hour)
	token, err := CreateToken(7)
	require.NoError(t, err)

	Configure("second-secret", time.Hour)
	_, err = ParseToken(token)
	assert.Error(t, err)
}
