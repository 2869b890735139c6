package employee

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitepay.com/sitepay/core"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	r := gin.New()
	Register(r.Group("/api"), &core.DatabaseManager{SqlDB: sqlDB})
	return r, mock
}

func expectSessionOpen(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT VERSION\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION()"}).AddRow("8.0.36"))
}

func TestUpdateDuplicatePhoneReturnsBadRequest(t *testing.T) {
	r, mock := newTestRouter(t)

	expectSessionOpen(mock)
	mock.ExpectQuery("SELECT .* FROM `employees`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "shift_rate"}).
			AddRow("E1", "Asha", "9000000001", 500.0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `employees`").
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	body := bytes.NewBufferString(`{"phone":"9000000002"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/E1", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone number already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnknownEmployeeReturnsNotFound(t *testing.T) {
	r, mock := newTestRouter(t)

	expectSessionOpen(mock)
	mock.ExpectQuery("SELECT .* FROM `employees`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "shift_rate"}))

	body := bytes.NewBufferString(`{"name":"Asha"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/missing", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Employee not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
