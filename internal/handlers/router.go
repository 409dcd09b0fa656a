package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches every API route to the engine. Kept here so the
// handler tests run against the exact routing the binary serves.
func RegisterRoutes(r *gin.Engine, jobs *JobHandler, apps *ApplicationHandler, users *UserHandler) {
	r.GET("/", Root)
	r.GET("/health", HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/jobs", jobs.GetJobs)
		api.GET("/jobs/:id", jobs.GetJob)
		api.POST("/jobs", jobs.CreateJob)
		api.PUT("/jobs/:id", jobs.UpdateJob)
		api.DELETE("/jobs/:id", jobs.DeleteJob)

		api.GET("/applications", apps.GetApplications)
		api.GET("/applications/:id", apps.GetApplication)
		api.POST("/applications", apps.CreateApplication)
		api.PUT("/applications/:id", apps.UpdateApplication)
		api.DELETE("/applications/:id", apps.DeleteApplication)

		api.POST("/users", users.CreateUser)
		api.GET("/users/:id", users.GetUser)
	}
}
