package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"azulpool/config"
	"azulpool/utils"

	"github.com/gin-gonic/gin"
)

type stubSessionStore struct {
	live map[string]bool
	err  error
}

func (s *stubSessionStore) Create(ctx context.Context, session utils.AdminSession) error {
	if s.live == nil {
		s.live = make(map[string]bool)
	}
	s.live[session.Token] = true
	return nil
}

func (s *stubSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.live[token], nil
}

func (s *stubSessionStore) Revoke(ctx context.Context, token string) error {
	delete(s.live, token)
	return nil
}

func newAuthTestRouter(sessions utils.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AdminAuthMiddleware(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthRejectsMissingCredential(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	router := newAuthTestRouter(&stubSessionStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthRejectsForgedToken(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	router := newAuthTestRouter(&stubSessionStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminAuthCookie, Value: "not-a-jwt"})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthAcceptsLiveSession(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	sessions := &stubSessionStore{live: map[string]bool{"tok-123": true}}
	router := newAuthTestRouter(sessions)

	signed, err := utils.SignSessionToken("tok-123", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminAuthCookie, Value: signed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAdminAuthAcceptsBearerFallback(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	sessions := &stubSessionStore{live: map[string]bool{"tok-123": true}}
	router := newAuthTestRouter(sessions)

	signed, err := utils.SignSessionToken("tok-123", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAdminAuthRejectsRevokedSession(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	sessions := &stubSessionStore{live: map[string]bool{}}
	router := newAuthTestRouter(sessions)

	signed, err := utils.SignSessionToken("tok-gone", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminAuthCookie, Value: signed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	sessions := &stubSessionStore{live: map[string]bool{"tok-123": true}}
	router := newAuthTestRouter(sessions)

	signed, err := utils.SignSessionToken("tok-123", -time.Minute)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminAuthCookie, Value: signed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminAuthSessionStoreFailure(t *testing.T) {
	config.AppConfig.SessionSecret = "test-secret"
	sessions := &stubSessionStore{err: errors.New("redis down")}
	router := newAuthTestRouter(sessions)

	signed, err := utils.SignSessionToken("tok-123", time.Hour)
	if err != nil {
		t.Fatalf("SignSessionToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AdminAuthCookie, Value: signed})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
