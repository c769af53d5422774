package dtos

// UserCreateRequest is the admin-only POST /users payload. Unlike public
// registration it may grant the admin flag.
type UserCreateRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	Password  string `json:"password" binding:"required,min=5,max=20"`
	FirstName string `json:"firstName" binding:"required,max=30"`
	LastName  string `json:"lastName" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UserUpdateRequest is the PATCH /users/:username payload. The username and
// admin flag are not updatable through this endpoint.
type UserUpdateRequest struct {
	Password  *string `json:"password,omitempty" binding:"omitempty,min=5,max=20"`
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=1,max=30"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
}
