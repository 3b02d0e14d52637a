package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/utilities"
	"talentpipe-backend/internal/workflow"
)

// GetApplication returns the application status view: current stage, days
// in stage, SLA standing, interview round, and the latest recruiter note.
func (pc *PipelineController) GetApplication(c *gin.Context) {
	a, err := pc.Store.FindApplication(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	candidateName := "Unknown"
	if candidate, err := pc.Store.FindCandidate(a.CandidateID); err == nil {
		candidateName = candidate.Name
	}
	jobTitle := "Unknown"
	if job, err := pc.Store.FindJob(a.JobID); err == nil {
		jobTitle = job.Title
	}

	sla, ok := workflow.StageSLA(a.Status)
	if !ok {
		sla = workflow.NoSLASentinel
	}
	view := gin.H{
		"application_id":          a.ID,
		"candidate_id":            a.CandidateID,
		"candidate_name":          candidateName,
		"job_id":                  a.JobID,
		"job_title":               jobTitle,
		"status":                  a.Status,
		"source":                  a.Source,
		"applied_at":              a.AppliedAt,
		"days_in_current_stage":   pc.Workflow.DaysInCurrentStage(a),
		"expected_sla_days":       sla,
		"sla_status":              pc.Workflow.SLAStatus(a),
		"current_interview_round": a.CurrentInterviewRound,
	}
	if latest, ok := a.LatestNote(); ok {
		view["latest_note"] = latest
	}
	c.JSON(http.StatusOK, view)
}

// ListApplications filters applications by candidate_id, job_id, or status.
// Exactly the filters supplied are applied; with none it lists everything.
func (pc *PipelineController) ListApplications(c *gin.Context) {
	if cid := c.Query("candidate_id"); cid != "" {
		c.JSON(http.StatusOK, pc.Store.ApplicationsByCandidate(cid))
		return
	}
	if jid := c.Query("job_id"); jid != "" {
		c.JSON(http.StatusOK, pc.Store.ApplicationsByJob(jid))
		return
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := model.ParseApplicationStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid application status: %s", raw),
			})
			return
		}
		c.JSON(http.StatusOK, pc.Store.ApplicationsByStatus(status))
		return
	}
	c.JSON(http.StatusOK, pc.Store.ListApplications())
}

// TransitionApplication drives the workflow state machine. The target must
// be reachable from the current status in the transition table.
func (pc *PipelineController) TransitionApplication(c *gin.Context) {
	body := struct {
		Status string `json:"status"`
		Actor  string `json:"actor"`
		Reason string `json:"reason"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	status, ok := model.ParseApplicationStatus(body.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid application status: %s", body.Status),
		})
		return
	}
	if body.Actor == "" {
		body.Actor = "system"
	}

	a, err := pc.Workflow.ApplyTransition(c.Param("id"), status, body.Actor, body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// AddNote appends a recruiter note to the application.
func (pc *PipelineController) AddNote(c *gin.Context) {
	body := struct {
		Note       string `json:"note"`
		AuthorID   string `json:"author_id"`
		AuthorName string `json:"author_name"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if body.Note == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Note text is required"})
		return
	}

	a, err := pc.Store.AddNote(c.Param("id"), body.Note, body.AuthorID, body.AuthorName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetStageDuration reports how long the application has been in its current
// stage compared to the expected SLA.
func (pc *PipelineController) GetStageDuration(c *gin.Context) {
	a, err := pc.Store.FindApplication(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc.Workflow.Duration(a))
}

// GetNextSteps returns candidate-facing guidance for the current stage:
// what is happening, what to do now, typical wait, and possible outcomes.
func (pc *PipelineController) GetNextSteps(c *gin.Context) {
	a, err := pc.Store.FindApplication(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	guidance := workflow.GuidanceFor(a.Status)
	sla, _ := workflow.StageSLA(a.Status)
	c.JSON(http.StatusOK, gin.H{
		"application_id":    a.ID,
		"current_status":    a.Status,
		"days_in_stage":     pc.Workflow.DaysInCurrentStage(a),
		"sla_days":          sla,
		"what_is_happening": guidance.WhatIsHappening,
		"candidate_action":  guidance.CandidateAction,
		"typical_wait":      guidance.TypicalWait,
		"possible_next":     guidance.PossibleNext,
	})
}

// GetStuckApplications returns non-terminal applications sitting in their
// stage longer than threshold_days (default 7).
func (pc *PipelineController) GetStuckApplications(c *gin.Context) {
	threshold := utilities.IntQuery(c.Query("threshold_days"), 7)
	if threshold < 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("threshold_days must be non-negative, got %d", threshold),
		})
		return
	}
	c.JSON(http.StatusOK, pc.Workflow.FindStuck(threshold))
}

// GetPipelineStats counts applications per workflow state.
func (pc *PipelineController) GetPipelineStats(c *gin.Context) {
	c.JSON(http.StatusOK, pc.Store.PipelineStats())
}
