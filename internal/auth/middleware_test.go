package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobias-homewood/jobly/internal/models"
)

func newProbeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Authenticate(testSecret))
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/users/:username", RequireSelfOrAdmin("username"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/whoami", func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func probe(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := CreateToken(user, testSecret)
	require.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	r := newProbeRouter(t)

	w := probe(r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")

	w = probe(r, "/admin", mustToken(t, models.User{Username: "bob"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = probe(r, "/admin", mustToken(t, models.User{Username: "aliya", IsAdmin: true}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSelfOrAdmin(t *testing.T) {
	r := newProbeRouter(t)

	w := probe(r, "/users/bob", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = probe(r, "/users/bob", mustToken(t, models.User{Username: "bob"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = probe(r, "/users/bob", mustToken(t, models.User{Username: "mallory"}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = probe(r, "/users/bob", mustToken(t, models.User{Username: "aliya", IsAdmin: true}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateIgnoresBadTokens(t *testing.T) {
	r := newProbeRouter(t)

	w := probe(r, "/whoami", "garbage")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = probe(r, "/whoami", mustToken(t, models.User{Username: "bob"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
}
