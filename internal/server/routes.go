// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"talentpipe-backend/internal/controller"
	"talentpipe-backend/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	pipeline := controller.NewPipelineController(s.Store, s.Log)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.SafeHeader(), middleware.RequestID(), middleware.EnvRateLimitMiddleware())

	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		candidateRoute := v1.Group("/candidate")
		{
			candidateRoute.GET("", pipeline.ListCandidates)
			candidateRoute.GET("/page", pipeline.GetCandidatePage)
			candidateRoute.POST("", middleware.SizeLimit(1<<20), pipeline.AddCandidate)
			candidateRoute.GET("/:id", pipeline.GetCandidate)
			candidateRoute.PATCH("/:id/status", middleware.SizeLimit(64<<10), pipeline.UpdateCandidateStatus)
			candidateRoute.GET("/:id/matches", pipeline.GetCandidateMatches)
			candidateRoute.GET("/:id/journey", pipeline.GetCandidateJourney)
			candidateRoute.GET("/:id/assessments", pipeline.GetAssessments)
			candidateRoute.GET("/:id/assessments/average", pipeline.GetAverageScore)
		}

		jobRoute := v1.Group("/job")
		{
			jobRoute.GET("", pipeline.ListOpenJobs)
			jobRoute.GET("/:id", pipeline.GetJob)
			jobRoute.GET("/:id/applications", pipeline.GetJobApplications)
		}

		v1.GET("/match/:candidate_id/:job_id", pipeline.GetSkillsGap)

		applicationRoute := v1.Group("/application")
		{
			applicationRoute.GET("", pipeline.ListApplications)
			applicationRoute.GET("/stuck", pipeline.GetStuckApplications)
			applicationRoute.GET("/stats", pipeline.GetPipelineStats)
			applicationRoute.GET("/:id", pipeline.GetApplication)
			applicationRoute.POST("/:id/transition", middleware.SizeLimit(64<<10), pipeline.TransitionApplication)
			applicationRoute.POST("/:id/note", middleware.SizeLimit(256<<10), pipeline.AddNote)
			applicationRoute.GET("/:id/stage", pipeline.GetStageDuration)
			applicationRoute.GET("/:id/next-steps", pipeline.GetNextSteps)
		}

		v1.GET("/workflow/transitions", pipeline.GetWorkflowTransitions)
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Health())
}
