package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type fakeVerifier struct {
	email string
	err   error
}

func (f fakeVerifier) Verify(string) (string, error) {
	return f.email, f.err
}

type fakeDirectory map[string]domain.Role

func (f fakeDirectory) RoleOf(_ context.Context, email string) (domain.Role, error) {
	role, ok := f[email]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

type failingDirectory struct {
	err error
}

func (f failingDirectory) RoleOf(context.Context, string) (domain.Role, error) {
	return "", f.err
}

func newTestRouter(mw ...ginext.HandlerFunc) http.Handler {
	r := ginext.New("test")
	handlers := append(mw, func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"email": c.GetString(EmailKey)})
	})
	r.GET("/probe", handlers...)
	r.POST("/probe", handlers...)
	return r
}

func do(r http.Handler, method, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	r := newTestRouter(Authenticate(fakeVerifier{email: "member@sphere.com"}))

	w := do(r, http.MethodGet, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "member@sphere.com")
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	r := newTestRouter(Authenticate(fakeVerifier{email: "member@sphere.com"}))

	w := do(r, http.MethodGet, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	r := newTestRouter(Authenticate(fakeVerifier{email: "member@sphere.com"}))

	w := do(r, http.MethodGet, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	r := newTestRouter(Authenticate(fakeVerifier{err: errors.New("bad signature")}))

	w := do(r, http.MethodGet, "Bearer forged")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDemoGuard_BlocksDemoWrite(t *testing.T) {
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "admin@sphere.com"}),
		DemoGuard([]string{"admin@sphere.com"}),
	)

	w := do(r, http.MethodPost, "Bearer token")

	// Soft payload, not an HTTP error.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isDemo":true`)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDemoGuard_AllowsDemoRead(t *testing.T) {
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "admin@sphere.com"}),
		DemoGuard([]string{"admin@sphere.com"}),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "isDemo")
}

func TestDemoGuard_AllowsRegularWrite(t *testing.T) {
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "real@user.com"}),
		DemoGuard([]string{"admin@sphere.com"}),
	)

	w := do(r, http.MethodPost, "Bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "isDemo")
}

func TestRequireRole_Allows(t *testing.T) {
	dir := fakeDirectory{"admin@sphere.com": domain.RoleAdmin}
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "admin@sphere.com"}),
		RequireRole(dir, domain.RoleAdmin),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	dir := fakeDirectory{"member@sphere.com": domain.RoleMember}
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "member@sphere.com"}),
		RequireRole(dir, domain.RoleAdmin),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "admin only actions")
}

func TestRequireRole_UnknownUser(t *testing.T) {
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "ghost@sphere.com"}),
		RequireRole(fakeDirectory{}, domain.RoleManager),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_DirectoryUnavailable(t *testing.T) {
	// A store outage is not a role denial; the caller must see a 500.
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "manager@sphere.com"}),
		RequireRole(failingDirectory{err: domain.ErrDependencyUnavailable}, domain.RoleManager),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "only actions")
}

func TestRequireRole_DirectoryTimeout(t *testing.T) {
	r := newTestRouter(
		Authenticate(fakeVerifier{email: "admin@sphere.com"}),
		RequireRole(failingDirectory{err: domain.ErrDependencyTimeout}, domain.RoleAdmin),
	)

	w := do(r, http.MethodGet, "Bearer token")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}

	r := ginext.New("test")
	r.Use(Recovery(log))
	r.GET("/boom", func(c *ginext.Context) {
		panic("handler blew up")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}
