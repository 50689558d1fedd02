package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %q not set; headers: %v", name, w.Header())
	return nil
}

func TestAttach(t *testing.T) {
	c, w := newTestContext(t)

	sc := NewSessionCookie(86400, true)
	sc.Attach(c, "jwt-value")

	ck := findCookie(t, w, SessionCookieName)
	if ck.Value != "jwt-value" {
		t.Errorf("unexpected value: %q", ck.Value)
	}
	if !ck.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if !ck.Secure {
		t.Error("cookie must be Secure when configured")
	}
	if ck.MaxAge != 86400 {
		t.Errorf("MaxAge = %d, want 86400", ck.MaxAge)
	}
	if ck.Path != "/" {
		t.Errorf("Path = %q, want /", ck.Path)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "SameSite=Lax") {
		t.Errorf("expected SameSite=Lax, got %q", w.Header().Get("Set-Cookie"))
	}
}

func TestAttach_InsecureMode(t *testing.T) {
	c, w := newTestContext(t)

	NewSessionCookie(60, false).Attach(c, "v")

	if ck := findCookie(t, w, SessionCookieName); ck.Secure {
		t.Error("cookie must not be Secure in non-release mode")
	}
}

func TestClear(t *testing.T) {
	c, w := newTestContext(t)

	NewSessionCookie(86400, false).Clear(c)

	ck := findCookie(t, w, SessionCookieName)
	if ck.Value != "" {
		t.Errorf("cleared cookie must have empty value, got %q", ck.Value)
	}
	if ck.MaxAge >= 0 {
		t.Errorf("cleared cookie must expire immediately, MaxAge = %d", ck.MaxAge)
	}
}
