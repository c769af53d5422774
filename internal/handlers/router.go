package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tobias-homewood/jobly/internal/auth"
)

// RegisterRoutes mounts every API route under /api/v1. The Authenticate
// middleware attaches claims when a valid token is present; the per-route
// gates enforce who may call what.
func RegisterRoutes(r *gin.Engine, secret string, authH *AuthHandler, companies *CompanyHandler, jobs *JobHandler, users *UserHandler) {
	api := r.Group("/api/v1")
	api.Use(auth.Authenticate(secret))

	api.GET("/health", HealthCheck)

	api.POST("/auth/token", authH.Token)
	api.POST("/auth/register", authH.Register)

	api.POST("/companies", auth.RequireAdmin(), companies.Create)
	api.GET("/companies", companies.List)
	api.GET("/companies/:handle", companies.Get)
	api.PATCH("/companies/:handle", auth.RequireAdmin(), companies.Update)
	api.DELETE("/companies/:handle", auth.RequireAdmin(), companies.Delete)

	api.POST("/jobs", auth.RequireAdmin(), jobs.Create)
	api.GET("/jobs", jobs.List)
	api.GET("/jobs/:id", jobs.Get)
	api.PATCH("/jobs/:id", auth.RequireAdmin(), jobs.Update)
	api.DELETE("/jobs/:id", auth.RequireAdmin(), jobs.Delete)

	api.POST("/users", auth.RequireAdmin(), users.Create)
	api.GET("/users", auth.RequireAdmin(), users.List)
	api.GET("/users/:username", auth.RequireSelfOrAdmin("username"), users.Get)
	api.PATCH("/users/:username", auth.RequireSelfOrAdmin("username"), users.Update)
	api.DELETE("/users/:username", auth.RequireSelfOrAdmin("username"), users.Delete)
	api.POST("/users/:username/jobs/:id", auth.RequireSelfOrAdmin("username"), users.Apply)
}
