package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pliu/bulletin/internal/models"
	"github.com/pliu/bulletin/internal/service"
	"github.com/pliu/bulletin/internal/store/sqlstore"
)

func newAccountHandler(t *testing.T) *AccountHandler {
	t.Helper()
	s, err := sqlstore.New("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return &AccountHandler{Accounts: service.NewAccountService(s)}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payload))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	handler := newAccountHandler(t)

	rr := postJSON(t, handler.Register, "/register", models.Account{Username: "bob", Password: "1234"})
	require.Equal(t, http.StatusOK, rr.Code)

	var acct models.Account
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&acct))
	assert.NotZero(t, acct.ID)
	assert.Equal(t, "bob", acct.Username)

	// Duplicate username
	rr = postJSON(t, handler.Register, "/register", models.Account{Username: "bob", Password: "1234"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestRegisterRejectsBadInput(t *testing.T) {
	handler := newAccountHandler(t)

	rr := postJSON(t, handler.Register, "/register", models.Account{Username: "", Password: "1234"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, handler.Register, "/register", models.Account{Username: "bob", Password: "123"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestLogin(t *testing.T) {
	handler := newAccountHandler(t)

	rr := postJSON(t, handler.Register, "/register", models.Account{Username: "bob", Password: "1234"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, handler.Login, "/login", models.Account{Username: "bob", Password: "1234"})
	require.Equal(t, http.StatusOK, rr.Code)

	var acct models.Account
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&acct))
	assert.Equal(t, "bob", acct.Username)
	assert.NotZero(t, acct.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	handler := newAccountHandler(t)

	rr := postJSON(t, handler.Register, "/register", models.Account{Username: "bob", Password: "1234"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, handler.Login, "/login", models.Account{Username: "bob", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, rr.Body.Len())

	rr = postJSON(t, handler.Login, "/login", models.Account{Username: "nobody", Password: "1234"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
