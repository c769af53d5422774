package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/auth"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Secret string
}

func NewAuthHandler(users *services.UserService, secret string) *AuthHandler {
	return &AuthHandler{Users: users, Secret: secret}
}

// Token godoc
// @Summary Log in
// @Description Exchanges a username/password pair for a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dtos.LoginRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.CreateToken(user, h.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register godoc
// @Summary Register
// @Description Creates a non-admin account and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dtos.RegisterRequest true "New user"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.Users.Register(dtos.UserCreateRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   false,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.CreateToken(user, h.Secret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}
