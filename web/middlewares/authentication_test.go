package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitepay.com/sitepay/security"
)

var testSecret = []byte("test-signing-secret")

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/api")
	protected.Use(Authentication(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employeeId": c.GetString(EmployeeIDKey),
			"accessRole": c.GetString(AccessRoleKey),
		})
	})

	admin := protected.Group("")
	admin.Use(ManagerOnly())
	admin.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func doRequest(r *gin.Engine, token string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticationPassesIdentityIntoContext(t *testing.T) {
	r := newTestRouter()

	token, err := security.CreateIdentityToken(security.Identity{
		ID:         "E1",
		AccessRole: "Worker",
	}, testSecret, time.Hour)
	require.NoError(t, err)

	w := doRequest(r, token, "/api/whoami")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employeeId":"E1"`)
	assert.Contains(t, w.Body.String(), `"accessRole":"Worker"`)
}

func TestAuthenticationRejectsMissingToken(t *testing.T) {
	r := newTestRouter()

	w := doRequest(r, "", "/api/whoami")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationRejectsExpiredToken(t *testing.T) {
	r := newTestRouter()

	token, err := security.CreateIdentityToken(security.Identity{
		ID:         "E1",
		AccessRole: "Worker",
	}, testSecret, -time.Hour)
	require.NoError(t, err)

	w := doRequest(r, token, "/api/whoami")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationRejectsWrongSecret(t *testing.T) {
	r := newTestRouter()

	token, err := security.CreateIdentityToken(security.Identity{
		ID:         "E1",
		AccessRole: "Worker",
	}, []byte("some-other-secret"), time.Hour)
	require.NoError(t, err)

	w := doRequest(r, token, "/api/whoami")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestManagerOnlyGate(t *testing.T) {
	r := newTestRouter()

	worker, err := security.CreateIdentityToken(security.Identity{
		ID:         "E1",
		AccessRole: "Worker",
	}, testSecret, time.Hour)
	require.NoError(t, err)

	manager, err := security.CreateIdentityToken(security.Identity{
		ID:         "M1",
		AccessRole: "Manager",
	}, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(r, worker, "/api/admin").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, manager, "/api/admin").Code)
}
