package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/auth"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/services"
)

type UserHandler struct {
	Users  *services.UserService
	Secret string
}

func NewUserHandler(users *services.UserService, secret string) *UserHandler {
	return &UserHandler{Users: users, Secret: secret}
}

// Create godoc
// @Summary Create a user
// @Description Creates a user, optionally an admin; admin only. Returns the
// @Description new user along with a token so the admin can hand it off.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dtos.UserCreateRequest true "User data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dtos.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Users.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.CreateToken(user, h.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// List godoc
// @Summary List users
// @Description Lists all users; admin only
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get godoc
// @Summary Get a user
// @Description Returns one user with their job applications; self or admin only
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Users.Get(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update godoc
// @Summary Update a user
// @Description Partially updates a user; self or admin only
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param user body dtos.UserUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users/{username} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Users.Update(c.Param("username"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete godoc
// @Summary Delete a user
// @Description Deletes a user; self or admin only
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := h.Users.Delete(username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// Apply godoc
// @Summary Apply to a job
// @Description Records a job application for a user; self or admin only
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param id path int true "Job id"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users/{username}/jobs/{id} [post]
func (h *UserHandler) Apply(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Users.ApplyToJob(c.Param("username"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": id})
}
