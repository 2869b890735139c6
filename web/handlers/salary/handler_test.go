package salary

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sitepay.com/sitepay/core"
)

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api"), (*core.DatabaseManager)(nil))
	return r
}

func postCalculate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/salary/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateRejectsMissingReferenceDate(t *testing.T) {
	r := newValidationRouter()

	w := postCalculate(r, `{"employeeId":"E1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "referenceDate")
}

// Older clients sent explicit week bounds; only the referenceDate shape is
// accepted now, so a bounds-only body fails instead of being silently
// honored.
func TestCalculateRejectsExplicitWeekBounds(t *testing.T) {
	r := newValidationRouter()

	w := postCalculate(r, `{"employeeId":"E1","weekStart":"2024-03-10","weekEnd":"2024-03-16"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateRejectsMissingEmployee(t *testing.T) {
	r := newValidationRouter()

	w := postCalculate(r, `{"referenceDate":"2024-03-13"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "employeeId")
}

func TestCalculateRejectsMalformedDate(t *testing.T) {
	r := newValidationRouter()

	w := postCalculate(r, `{"employeeId":"E1","referenceDate":"13/03/2024"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
