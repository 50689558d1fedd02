package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SessionCookie attaches and clears the session token on responses. It only
// writes cookies; reading and verifying the token from incoming requests is
// the job of the route-protection middleware.
type SessionCookie struct {
	maxAge int
	secure bool
}

// NewSessionCookie configures the carrier. maxAge is the cookie lifetime in
// seconds and must match the token validity; secure should be true in
// release mode so the cookie is only sent over TLS.
func NewSessionCookie(maxAge int, secure bool) *SessionCookie {
	return &SessionCookie{maxAge: maxAge, secure: secure}
}

// Attach sets the session token on the response as an HTTP-only,
// same-site-restricted cookie.
func (s *SessionCookie) Attach(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, s.maxAge, "/", "", s.secure, true)
}

// Clear instructs the client to delete the session cookie by overwriting it
// with an immediate expiry.
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.secure, true)
}
