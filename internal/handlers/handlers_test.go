package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tobias-homewood/jobly/internal/auth"
	"github.com/tobias-homewood/jobly/internal/models"
	"github.com/tobias-homewood/jobly/internal/services"
)

const testSecret = "test-secret"

var testDB *gorm.DB
var router *gin.Engine

// TestMain sets up an in-memory database and the full router, runs the
// tests, and tears down.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(&models.Company{}, &models.Job{}, &models.User{}, &models.Application{})
	if err != nil {
		log.Fatalf("Failed to migrate test database schema: %v", err)
	}

	companyService := services.NewCompanyService(testDB)
	jobService := services.NewJobService(testDB)
	userService := services.NewUserService(testDB, bcrypt.MinCost)

	router = gin.New()
	RegisterRoutes(router, testSecret,
		NewAuthHandler(userService, testSecret),
		NewCompanyHandler(companyService),
		NewJobHandler(jobService),
		NewUserHandler(userService, testSecret),
	)

	exitCode := m.Run()

	if sqlDB, err := testDB.DB(); err == nil {
		sqlDB.Close()
	}
	os.Exit(exitCode)
}

func clearTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"applications", "jobs", "users", "companies"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
}

// doRequest runs one request through the real router. An empty token sends
// the request anonymously.
func doRequest(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, username string, isAdmin bool) string {
	t.Helper()
	token, err := auth.CreateToken(models.User{Username: username, IsAdmin: isAdmin}, testSecret)
	require.NoError(t, err)
	return token
}

func seedCompany(t *testing.T, handle, name string, numEmployees int) models.Company {
	t.Helper()
	company := models.Company{Handle: handle, Name: name, NumEmployees: numEmployees}
	require.NoError(t, testDB.Create(&company).Error)
	return company
}

func seedJob(t *testing.T, title string, salary int, equity float64, handle string) models.Job {
	t.Helper()
	job := models.Job{Title: title, Salary: salary, Equity: equity, CompanyHandle: handle}
	require.NoError(t, testDB.Create(&job).Error)
	return job
}

func seedUser(t *testing.T, username, password string, isAdmin bool) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:  username,
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
		IsAdmin:   isAdmin,
	}
	require.NoError(t, testDB.Create(&user).Error)
	return user
}
