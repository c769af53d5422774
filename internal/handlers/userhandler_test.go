package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobias-homewood/jobly/internal/auth"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/models"
)

func TestCreateUser_AsAdmin(t *testing.T) {
	clearTables(t)
	payload := dtos.UserCreateRequest{
		Username:  "newadmin",
		Password:  "password",
		FirstName: "New",
		LastName:  "Admin",
		Email:     "newadmin@example.com",
		IsAdmin:   true,
	}

	w := doRequest(t, http.MethodPost, "/api/v1/users", tokenFor(t, "aliya", true), payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "newadmin", body.User.Username)
	assert.True(t, body.User.IsAdmin)
	require.NotEmpty(t, body.Token)

	claims, err := auth.VerifyToken(body.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "newadmin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestCreateUser_NonAdmin(t *testing.T) {
	clearTables(t)
	payload := dtos.UserCreateRequest{
		Username:  "sneaky",
		Password:  "password",
		FirstName: "Sneaky",
		LastName:  "User",
		Email:     "sneaky@example.com",
	}

	w := doRequest(t, http.MethodPost, "/api/v1/users", tokenFor(t, "bob", false), payload)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsers(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	seedUser(t, "aliya", "password", true)

	w := doRequest(t, http.MethodGet, "/api/v1/users", tokenFor(t, "aliya", true), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	// Ordered by username.
	assert.Equal(t, "aliya", body.Users[0].Username)
	assert.Equal(t, "bob", body.Users[1].Username)
	// Password hashes never serialize.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestListUsers_NonAdmin(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodGet, "/api/v1/users", tokenFor(t, "bob", false), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_Self(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	seedCompany(t, "acme", "Acme Corp", 120)
	job := seedJob(t, "Engineer", 90000, 0.01, "acme")
	require.NoError(t, testDB.Create(&models.Application{Username: "bob", JobID: job.ID}).Error)

	w := doRequest(t, http.MethodGet, "/api/v1/users/bob", tokenFor(t, "bob", false), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bob", body.User.Username)
	assert.Equal(t, []uint{job.ID}, body.User.JobIDs)
}

func TestGetUser_OtherUser(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodGet, "/api/v1/users/bob", tokenFor(t, "mallory", false), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser_AdminForOther(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodGet, "/api/v1/users/bob", tokenFor(t, "aliya", true), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	clearTables(t)

	w := doRequest(t, http.MethodGet, "/api/v1/users/ghost", tokenFor(t, "aliya", true), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No user: ghost")
}

func TestUpdateUser_PasswordRehash(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "oldpassword", false)
	newPassword := "newpassword"
	payload := dtos.UserUpdateRequest{Password: &newPassword}

	w := doRequest(t, http.MethodPatch, "/api/v1/users/bob", tokenFor(t, "bob", false), payload)
	assert.Equal(t, http.StatusOK, w.Code)

	// The old password no longer works, the new one does.
	w = doRequest(t, http.MethodPost, "/api/v1/auth/token", "", dtos.LoginRequest{Username: "bob", Password: "oldpassword"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, http.MethodPost, "/api/v1/auth/token", "", dtos.LoginRequest{Username: "bob", Password: "newpassword"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUser_Partial(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	newFirst := "Robert"
	payload := dtos.UserUpdateRequest{FirstName: &newFirst}

	w := doRequest(t, http.MethodPatch, "/api/v1/users/bob", tokenFor(t, "bob", false), payload)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Robert", body.User.FirstName)
	assert.Equal(t, "User", body.User.LastName)
}

func TestUpdateUser_EmptyBody(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodPatch, "/api/v1/users/bob", tokenFor(t, "bob", false), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no fields to update")
}

func TestDeleteUser(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodDelete, "/api/v1/users/bob", tokenFor(t, "bob", false), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": "bob"}`, w.Body.String())

	w = doRequest(t, http.MethodGet, "/api/v1/users/bob", tokenFor(t, "aliya", true), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyToJob(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	seedCompany(t, "acme", "Acme Corp", 120)
	job := seedJob(t, "Engineer", 90000, 0.01, "acme")

	w := doRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/users/bob/jobs/%d", job.ID), tokenFor(t, "bob", false), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"applied": %d}`, job.ID), w.Body.String())

	// Applying twice is rejected.
	w = doRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/users/bob/jobs/%d", job.ID), tokenFor(t, "bob", false), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate application")
}

func TestApplyToJob_UnknownJob(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)

	w := doRequest(t, http.MethodPost, "/api/v1/users/bob/jobs/999", tokenFor(t, "bob", false), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No job: 999")
}

func TestApplyToJob_OtherUser(t *testing.T) {
	clearTables(t)
	seedUser(t, "bob", "password", false)
	seedCompany(t, "acme", "Acme Corp", 120)
	job := seedJob(t, "Engineer", 90000, 0.01, "acme")

	w := doRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/users/bob/jobs/%d", job.ID), tokenFor(t, "mallory", false), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
