package dtos

// JobCreateRequest is the POST /jobs payload.
type JobCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	Salary        int     `json:"salary" binding:"omitempty,gte=0"`
	Equity        float64 `json:"equity" binding:"omitempty,gte=0,lte=1"`
	CompanyHandle string  `json:"companyHandle" binding:"required"`
}

// JobUpdateRequest is the PATCH /jobs/:id payload. Pointers distinguish
// "leave untouched" from an explicit zero; the id and companyHandle are not
// updatable.
type JobUpdateRequest struct {
	Title  *string  `json:"title,omitempty" binding:"omitempty,min=1"`
	Salary *int     `json:"salary,omitempty" binding:"omitempty,gte=0"`
	Equity *float64 `json:"equity,omitempty" binding:"omitempty,gte=0,lte=1"`
}
