package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talentpipe-backend/internal/store"
	"talentpipe-backend/internal/utilities"
)

// GetJob returns the full requisition: title, department, description,
// required and preferred skills, salary range, and hiring manager.
func (pc *PipelineController) GetJob(c *gin.Context) {
	job, err := pc.Store.FindJob(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListOpenJobs returns currently open requisitions, optionally narrowed by
// department, skills, or location.
func (pc *PipelineController) ListOpenJobs(c *gin.Context) {
	search := store.JobSearch{
		Skills:     utilities.SplitList(c.Query("skills")),
		Location:   c.Query("location"),
		Department: c.Query("department"),
	}
	c.JSON(http.StatusOK, pc.Store.SearchOpenJobs(search))
}

// GetJobApplications returns a requisition's applications, most recent first.
func (pc *PipelineController) GetJobApplications(c *gin.Context) {
	if _, err := pc.Store.FindJob(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc.Store.ApplicationsByJob(c.Param("id")))
}

// GetSkillsGap reports what a candidate is missing for a specific job: the
// required skills they have and lack, preferred coverage, and the overall
// fit estimate.
func (pc *PipelineController) GetSkillsGap(c *gin.Context) {
	result, err := pc.Matcher.MatchScore(c.Param("candidate_id"), c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
