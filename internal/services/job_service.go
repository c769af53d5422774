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

const jobSelect = "SELECT id, title, salary, equity, company_handle FROM jobs"

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create inserts a new job for an existing company.
func (s *JobService) Create(req dtos.JobCreateRequest) (models.Job, error) {
	var company models.Company
	err := s.DB.First(&company, "handle = ?", req.CompanyHandle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, apperr.NotFound(fmt.Sprintf("No company: %s", req.CompanyHandle))
	}
	if err != nil {
		return models.Job{}, err
	}

	job := models.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}
	if err := s.DB.Create(&job).Error; err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// List returns jobs matching the given filters, ordered by title.
func (s *JobService) List(params []sqlbuilder.Param) ([]models.Job, error) {
	where, vals, err := sqlbuilder.JobFilters.Where(params)
	if err != nil {
		return nil, err
	}

	query := jobSelect
	if where != "" {
		query += " " + where
	}
	query += " ORDER BY title"

	var jobs []models.Job
	if err := s.DB.Raw(query, vals...).Scan(&jobs).Error; err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// Get returns one job with its company.
func (s *JobService) Get(id uint) (models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, apperr.NotFound(fmt.Sprintf("No job: %d", id))
	}
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// Update applies a partial update and returns the new row. The job's id and
// company are not updatable.
func (s *JobService) Update(id uint, req dtos.JobUpdateRequest) (models.Job, error) {
	var fields []sqlbuilder.Field
	if req.Title != nil {
		fields = append(fields, sqlbuilder.Field{Name: "title", Value: *req.Title})
	}
	if req.Salary != nil {
		fields = append(fields, sqlbuilder.Field{Name: "salary", Value: *req.Salary})
	}
	if req.Equity != nil {
		fields = append(fields, sqlbuilder.Field{Name: "equity", Value: *req.Equity})
	}

	set, vals, err := sqlbuilder.PartialUpdate(fields, nil)
	if err != nil {
		return models.Job{}, err
	}

	query := fmt.Sprintf(
		"UPDATE jobs SET %s WHERE id = $%d RETURNING id, title, salary, equity, company_handle",
		set, len(vals)+1,
	)

	var job models.Job
	result := s.DB.Raw(query, append(vals, id)...).Scan(&job)
	if result.Error != nil {
		return models.Job{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Job{}, apperr.NotFound(fmt.Sprintf("No job: %d", id))
	}
	return job, nil
}

// Delete removes a job.
func (s *JobService) Delete(id uint) error {
	result := s.DB.Delete(&models.Job{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(fmt.Sprintf("No job: %d", id))
	}
	return nil
}
