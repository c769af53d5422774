package services

import (
	"errors"
	"fmt"

	"github.com/tobias-homewood/jobly/internal/apperr"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/models"
	"github.com/tobias-homewood/jobly/internal/sqlbuilder"
	"gorm.io/gorm"
)

// companyColumns maps JSON field names to their column names for partial
// updates. Fields missing from the map already match their column.
var companyColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

const companySelect = "SELECT handle, name, description, num_employees, logo_url FROM companies"

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Create inserts a new company. The handle must not already exist.
func (s *CompanyService) Create(req dtos.CompanyCreateRequest) (models.Company, error) {
	var existing models.Company
	err := s.DB.First(&existing, "handle = ?", req.Handle).Error
	if err == nil {
		return models.Company{}, apperr.BadRequest(fmt.Sprintf("Duplicate company: %s", req.Handle))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Company{}, err
	}

	company := models.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	if err := s.DB.Create(&company).Error; err != nil {
		return models.Company{}, duplicateAsBadRequest(err, fmt.Sprintf("Duplicate company: %s", req.Handle))
	}
	return company, nil
}

// List returns companies matching the given filters, ordered by name.
func (s *CompanyService) List(params []sqlbuilder.Param) ([]models.Company, error) {
	where, vals, err := sqlbuilder.CompanyFilters.Where(params)
	if err != nil {
		return nil, err
	}

	query := companySelect
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY name"

	var companies []models.Company
	if err := s.DB.Raw(query, vals...).Scan(&companies).Error; err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// Get returns one company with its jobs.
func (s *CompanyService) Get(handle string) (models.Company, error) {
	var company models.Company
	err := s.DB.Preload("Jobs").First(&company, "handle = ?", handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Company{}, apperr.NotFound(fmt.Sprintf("No company: %s", handle))
	}
	if err != nil {
		return models.Company{}, err
	}
	return company, nil
}

// Update applies a partial update and returns the new row.
func (s *CompanyService) Update(handle string, req dtos.CompanyUpdateRequest) (models.Company, error) {
	var fields []sqlbuilder.Field
	if req.Name != nil {
		fields = append(fields, sqlbuilder.Field{Name: "name", Value: *req.Name})
	}
	if req.Description != nil {
		fields = append(fields, sqlbuilder.Field{Name: "description", Value: *req.Description})
	}
	if req.NumEmployees != nil {
		fields = append(fields, sqlbuilder.Field{Name: "numEmployees", Value: *req.NumEmployees})
	}
	if req.LogoURL != nil {
		fields = append(fields, sqlbuilder.Field{Name: "logoUrl", Value: *req.LogoURL})
	}

	set, vals, err := sqlbuilder.PartialUpdate(fields, companyColumns)
	if err != nil {
		return models.Company{}, err
	}

	query := fmt.Sprintf(
		"UPDATE companies SET %s WHERE handle = $%d RETURNING handle, name, description, num_employees, logo_url",
		set, len(vals)+1,
	)

	var company models.Company
	result := s.DB.Raw(query, append(vals, handle)...).Scan(&company)
	if result.Error != nil {
		return models.Company{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Company{}, apperr.NotFound(fmt.Sprintf("No company: %s", handle))
	}
	return company, nil
}

// Delete removes a company and, via cascade, its jobs.
func (s *CompanyService) Delete(handle string) error {
	result := s.DB.Delete(&models.Company{}, "handle = ?", handle)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(fmt.Sprintf("No company: %s", handle))
	}
	return nil
}
