package services

import (
	"errors"
	"fmt"

	"github.com/tobias-homewood/jobly/internal/apperr"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/models"
	"github.com/tobias-homewood/jobly/internal/sqlbuilder"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var userColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
}

type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	return &UserService{DB: db, BcryptCost: bcryptCost}
}

// Register hashes the password and inserts a new user. The username must not
// already exist.
func (s *UserService) Register(req dtos.UserCreateRequest) (models.User, error) {
	var existing models.User
	err := s.DB.First(&existing, "username = ?", req.Username).Error
	if err == nil {
		return models.User{}, apperr.BadRequest(fmt.Sprintf("Duplicate username: %s", req.Username))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.BcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, duplicateAsBadRequest(err, fmt.Sprintf("Duplicate username: %s", req.Username))
	}
	return user, nil
}

// Authenticate checks a username/password pair. Wrong username and wrong
// password produce the same error so callers cannot probe for accounts.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperr.Unauthorized("Invalid username/password")
	}
	if err != nil {
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, apperr.Unauthorized("Invalid username/password")
	}
	return user, nil
}

// List returns all users ordered by username.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get returns one user with the ids of the jobs they applied to.
func (s *UserService) Get(username string) (models.User, error) {
	var user models.User
	err := s.DB.Preload("Applications").First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperr.NotFound(fmt.Sprintf("No user: %s", username))
	}
	if err != nil {
		return models.User{}, err
	}

	user.JobIDs = make([]uint, 0, len(user.Applications))
	for _, app := range user.Applications {
		user.JobIDs = append(user.JobIDs, app.JobID)
	}
	return user, nil
}

// Update applies a partial update and returns the new row. A new password is
// re-hashed before storage.
func (s *UserService) Update(username string, req dtos.UserUpdateRequest) (models.User, error) {
	var fields []sqlbuilder.Field
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.BcryptCost)
		if err != nil {
			return models.User{}, err
		}
		fields = append(fields, sqlbuilder.Field{Name: "password", Value: string(hashed)})
	}
	if req.FirstName != nil {
		fields = append(fields, sqlbuilder.Field{Name: "firstName", Value: *req.FirstName})
	}
	if req.LastName != nil {
		fields = append(fields, sqlbuilder.Field{Name: "lastName", Value: *req.LastName})
	}
	if req.Email != nil {
		fields = append(fields, sqlbuilder.Field{Name: "email", Value: *req.Email})
	}

	set, vals, err := sqlbuilder.PartialUpdate(fields, userColumns)
	if err != nil {
		return models.User{}, err
	}

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE username = $%d RETURNING username, first_name, last_name, email, is_admin",
		set, len(vals)+1,
	)

	var user models.User
	result := s.DB.Raw(query, append(vals, username)...).Scan(&user)
	if result.Error != nil {
		return models.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, apperr.NotFound(fmt.Sprintf("No user: %s", username))
	}
	return user, nil
}

// Delete removes a user and, via cascade, their applications.
func (s *UserService) Delete(username string) error {
	result := s.DB.Delete(&models.User{}, "username = ?", username)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(fmt.Sprintf("No user: %s", username))
	}
	return nil
}

// ApplyToJob records that a user applied to a job.
func (s *UserService) ApplyToJob(username string, jobID uint) error {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(fmt.Sprintf("No job: %d", jobID))
	}
	if err != nil {
		return err
	}

	var user models.User
	err = s.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(fmt.Sprintf("No user: %s", username))
	}
	if err != nil {
		return err
	}

	var existing models.Application
	err = s.DB.First(&existing, "username = ? AND job_id = ?", username, jobID).Error
	if err == nil {
		return apperr.BadRequest(fmt.Sprintf("Duplicate application: job %d", jobID))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	app := models.Application{Username: username, JobID: jobID}
	if err := s.DB.Create(&app).Error; err != nil {
		return duplicateAsBadRequest(err, fmt.Sprintf("Duplicate application: job %d", jobID))
	}
	return nil
}
