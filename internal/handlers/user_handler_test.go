package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatedWithCookie(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var u struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body, &u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)
	// пароль наружу не отдаётся
	assert.NotContains(t, string(body), "password")

	var hasAuth bool
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			hasAuth = true
		}
	}
	assert.True(t, hasAuth, "register must set the auth cookie")
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "Alice", "dup@example.com")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]string{
		"name": "Bob", "email": "dup@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/users", map[string]string{
		"name": "Alice", "email": "", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_SuccessSetsCookie(t *testing.T) {
	ts := newTestServer(t)
	id := registerUser(t, ts.URL, "Alice", "alice@example.com")

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/users/login", map[string]string{
		"email": "alice@example.com", "password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var u struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &u))
	// login возвращает тот же стабильный идентификатор
	assert.Equal(t, id, u.ID)

	var hasAuth bool
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			hasAuth = true
		}
	}
	assert.True(t, hasAuth)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "Alice", "alice@example.com")

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/users/login", map[string]string{
		"email": "alice@example.com", "password": "wrong99",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/users/login", map[string]string{
		"email": "ghost@example.com", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
