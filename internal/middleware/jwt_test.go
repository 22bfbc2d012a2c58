package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/suites-api/internal/model"
	"github.com/stayhub/suites-api/internal/utils"
)

const testSecret = "test-secret"

func invoke(t *testing.T, mw []echo.MiddlewareFunc, authz string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/suites", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	h := echo.HandlerFunc(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	if err := h(c); err != nil {
		t.Fatalf("middleware chain: %v", err)
	}
	return rec
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	st, err := utils.NewSessionToken(testSecret, &model.User{ID: 1, Email: "a@b.co", Role: role}, 7)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return "Bearer " + st.Token
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := invoke(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	st, err := utils.NewSessionToken("other-secret", &model.User{ID: 1}, 7)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	rec := invoke(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+st.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoleRejectsCustomer(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("Admin")}
	rec := invoke(t, mw, adminToken(t, "Customer"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoleAdmitsAdmin(t *testing.T) {
	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("Admin")}
	rec := invoke(t, mw, adminToken(t, "Admin"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
