package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/dtos"
	"github.com/tobias-homewood/jobly/internal/services"
	"github.com/tobias-homewood/jobly/internal/sqlbuilder"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// Create godoc
// @Summary Create a company
// @Description Creates a new company; admin only
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dtos.CompanyCreateRequest true "Company data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	company, err := h.Companies.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// List godoc
// @Summary List companies
// @Description Lists companies, optionally filtered by name, minEmployees and maxEmployees
// @Tags companies
// @Produce json
// @Param name query string false "Substring of the company name, case-insensitive"
// @Param minEmployees query int false "Minimum employee count"
// @Param maxEmployees query int false "Maximum employee count"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	params, err := sqlbuilder.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		badRequest(c, err)
		return
	}

	companies, err := h.Companies.List(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get godoc
// @Summary Get a company
// @Description Returns one company with its jobs
// @Tags companies
// @Produce json
// @Param handle path string true "Company handle"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /companies/{handle} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.Companies.Get(c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Update godoc
// @Summary Update a company
// @Description Partially updates a company; admin only
// @Tags companies
// @Accept json
// @Produce json
// @Param handle path string true "Company handle"
// @Param company body dtos.CompanyUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /companies/{handle} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	company, err := h.Companies.Update(c.Param("handle"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Delete godoc
// @Summary Delete a company
// @Description Deletes a company and its jobs; admin only
// @Tags companies
// @Produce json
// @Param handle path string true "Company handle"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /companies/{handle} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.Companies.Delete(handle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
