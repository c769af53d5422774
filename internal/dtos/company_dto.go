package dtos

// CompanyCreateRequest is the POST /companies payload.
type CompanyCreateRequest struct {
	Handle       string `json:"handle" binding:"required,max=25"`
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description"`
	NumEmployees int    `json:"numEmployees" binding:"omitempty,gte=0"`
	LogoURL      string `json:"logoUrl" binding:"omitempty,url"`
}

// CompanyUpdateRequest is the PATCH /companies/:handle payload. The handle
// itself is not updatable.
type CompanyUpdateRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty"`
	NumEmployees *int    `json:"numEmployees,omitempty" binding:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl,omitempty" binding:"omitempty,url"`
}
