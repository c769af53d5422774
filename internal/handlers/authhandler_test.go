package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobias-homewood/jobly/internal/auth"
	"github.com/tobias-homewood/jobly/internal/dtos"
)

func TestRegister(t *testing.T) {
	clearTables(t)
	payload := dtos.RegisterRequest{
		Username:  "newbie",
		Password:  "password",
		FirstName: "New",
		LastName:  "Person",
		Email:     "newbie@example.com",
	}

	w := doRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// Registration never grants admin.
	claims, err := auth.VerifyToken(body.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "newbie", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	payload := dtos.RegisterRequest{
		Username:  "bob",
		Password:  "password",
		FirstName: "Bob",
		LastName:  "Again",
		Email:     "bob2@example.com",
	}

	w := doRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate username: bob")
}

func TestRegister_MissingFields(t *testing.T) {
	clearTables(t)
	payload := map[string]any{"username": "incomplete"}

	w := doRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	clearTables(t)
	payload := dtos.RegisterRequest{
		Username:  "shorty",
		Password:  "abc",
		FirstName: "Short",
		LastName:  "Password",
		Email:     "shorty@example.com",
	}

	w := doRequest(t, http.MethodPost, "/api/v1/auth/register", "", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodPost, "/api/v1/auth/token", "", dtos.LoginRequest{Username: "bob", Password: "password"})

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := auth.VerifyToken(body.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodPost, "/api/v1/auth/token", "", dtos.LoginRequest{Username: "bob", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username/password")
}

func TestLogin_UnknownUser(t *testing.T) {
	clearTables(t)

	w := doRequest(t, http.MethodPost, "/api/v1/auth/token", "", dtos.LoginRequest{Username: "ghost", Password: "password"})

	// Same response as a wrong password so accounts cannot be probed.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username/password")
}
