package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(t *testing.T, isAdmin RoleChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/gated", AuthRequired(), func(c *gin.Context) {
		email, _ := AuthedEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	r.GET("/admin", AuthRequired(), AdminRequired(isAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateToken("test-subject", email)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := newGatedRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := newGatedRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := newGatedRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := newGatedRouter(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", bearerFor(t, "a@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestAdminRequiredForbidsNonAdmin(t *testing.T) {
	r := newGatedRouter(t, func(email string) (bool, error) { return false, nil })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, "plain@x.com"))
	r.ServeHTTP(w, req)

	// A valid credential without the role is forbidden, not unauthorized.
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	var checked string
	r := newGatedRouter(t, func(email string) (bool, error) {
		checked = email
		return true, nil
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@x.com", checked)
}

func TestAdminRequiredLookupFailure(t *testing.T) {
	r := newGatedRouter(t, func(email string) (bool, error) {
		return false, errors.New("store unreachable")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@x.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
