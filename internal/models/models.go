package models

// Company is a listed employer. The handle is the natural primary key and
// never changes after creation.
type Company struct {
	Handle       string `gorm:"primaryKey" json:"handle"`
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	NumEmployees int    `json:"numEmployees"`
	LogoURL      string `json:"logoUrl"`

	// 'omitempty' keeps the jobs out of list responses; only the company
	// detail endpoint preloads them.
	Jobs []Job `gorm:"foreignKey:CompanyHandle;references:Handle;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

// Job is a posting that belongs to exactly one company.
type Job struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"not null" json:"title"`
	Salary        int     `gorm:"check:salary >= 0" json:"salary"`
	Equity        float64 `gorm:"type:numeric;check:equity <= 1" json:"equity"`
	CompanyHandle string  `json:"companyHandle"`

	// Association: filled by Preload for the job detail response.
	Company *Company `gorm:"foreignKey:CompanyHandle;references:Handle" json:"company,omitempty"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// User is an account. The password column holds a bcrypt hash and is never
// serialized.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`

	Applications []Application `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`

	// JobIDs carries the ids of applied jobs on the user detail response.
	JobIDs []uint `gorm:"-" json:"applications,omitempty"`
}

// Application joins a user to a job they applied for.
type Application struct {
	Username string `gorm:"primaryKey" json:"username"`
	JobID    uint   `gorm:"primaryKey;autoIncrement:false" json:"jobId"`
}
