package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/stayhub/suites-api/internal/utils"
)

var (
	duplicateKeyErr = mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	foreignKeyErr   = mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"}
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newRequest builds an echo context around a recorded request. Path
// parameters are supplied as alternating name, value pairs.
func newRequest(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Envelope {
	t.Helper()
	var env utils.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, env utils.Envelope, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected HTTP %d, got %d (body %s)", status, rec.Code, rec.Body.String())
	}
	if env.StatusCode != status {
		t.Fatalf("envelope statusCode %d does not match HTTP status %d", env.StatusCode, status)
	}
	wantSuccess := status < http.StatusBadRequest
	if env.Success != wantSuccess {
		t.Fatalf("envelope success = %v for status %d", env.Success, status)
	}
}
