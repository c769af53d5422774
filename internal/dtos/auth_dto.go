package dtos

// LoginRequest is the POST /auth/token payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the POST /auth/register payload. New accounts are
// always non-admin; an admin must use POST /users to grant the flag.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	Password  string `json:"password" binding:"required,min=5,max=20"`
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
}
