package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/apperr"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/services"
	"github.com/tobias-homewood/jobly/internal/sqlbuilder"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// jobID parses the :id route parameter.
func jobID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid job id")
	}
	return uint(id), nil
}

// Create godoc
// @Summary Create a job
// @Description Creates a new job for an existing company; admin only
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body dtos.JobCreateRequest true "Job data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.Jobs.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// List godoc
// @Summary List jobs
// @Description Lists jobs, optionally filtered by title, minSalary and hasEquity
// @Tags jobs
// @Produce json
// @Param title query string false "Substring of the job title, case-insensitive"
// @Param minSalary query int false "Minimum salary"
// @Param hasEquity query bool false "Only jobs with (or without) equity"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	params, err := sqlbuilder.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		badRequest(c, err)
		return
	}

	jobs, err := h.Jobs.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get godoc
// @Summary Get a job
// @Description Returns one job with its company
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	job, err := h.Jobs.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Update godoc
// @Summary Update a job
// @Description Partially updates a job; admin only
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param job body dtos.JobUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.Jobs.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Delete godoc
// @Summary Delete a job
// @Description Deletes a job; admin only
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := jobID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Jobs.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
