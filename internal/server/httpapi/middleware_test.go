package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/acquisitions/internal/server/auth"
)

func doMeWithCookie(t *testing.T, s *HTTPServer, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_NoCookie(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	w := doMeWithCookie(t, s, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireAuth_ValidToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	token, err := s.issuer.Issue("u-1", "a@x.com", "admin")
	require.NoError(t, err)

	w := doMeWithCookie(t, s, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	expired := auth.NewTokenIssuer([]byte(testConfig().SecretKey), -time.Minute)
	token, err := expired.Issue("u-1", "a@x.com", "user")
	require.NoError(t, err)

	w := doMeWithCookie(t, s, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	w := doMeWithCookie(t, s, "not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	other := auth.NewTokenIssuer([]byte("other-secret"), time.Hour)
	token, err := other.Issue("u-1", "a@x.com", "user")
	require.NoError(t, err)

	w := doMeWithCookie(t, s, token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
