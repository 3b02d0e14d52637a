package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/store"
	"talentpipe-backend/internal/utilities"
	"talentpipe-backend/internal/workflow"
)

// GetCandidate returns a candidate's complete profile.
func (pc *PipelineController) GetCandidate(c *gin.Context) {
	candidate, err := pc.Store.FindCandidate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ListCandidates lists or searches candidates. With no query parameters it
// returns every candidate; q, skills, min_exp, location, and status narrow
// the result.
func (pc *PipelineController) ListCandidates(c *gin.Context) {
	rawStatus := c.Query("status")
	if rawStatus != "" {
		status, ok := model.ParseCandidateStatus(rawStatus)
		if !ok {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid candidate status: %s", rawStatus),
			})
			return
		}
		c.JSON(http.StatusOK, pc.Store.CandidatesByStatus(status))
		return
	}

	search := store.CandidateSearch{
		Query:         c.Query("q"),
		Skills:        utilities.SplitList(c.Query("skills")),
		MinExperience: utilities.IntQuery(c.Query("min_exp"), 0),
		Location:      c.Query("location"),
	}
	c.JSON(http.StatusOK, pc.Store.SearchCandidates(search))
}

// GetCandidatePage returns one page of candidates in id order. The cursor
// is the last id seen on the previous page.
func (pc *PipelineController) GetCandidatePage(c *gin.Context) {
	afterID := c.Query("after_id")
	pageSize := utilities.IntQuery(c.Query("page_size"), 20)
	page := pc.Store.CandidatePage(afterID, pageSize)

	next := ""
	if len(page) > 0 {
		next = page[len(page)-1].ID
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates": page,
		"next_after": next,
	})
}

// AddCandidate stores a new candidate record from the request body.
func (pc *PipelineController) AddCandidate(c *gin.Context) {
	candidate := model.Candidate{}
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if candidate.Name == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Candidate name is required"})
		return
	}
	if candidate.YearsOfExperience < 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Years of experience must be non-negative"})
		return
	}

	c.JSON(http.StatusCreated, pc.Store.AddCandidate(candidate))
}

// UpdateCandidateStatus replaces the candidate's lifecycle status.
func (pc *PipelineController) UpdateCandidateStatus(c *gin.Context) {
	body := struct {
		Status string `json:"status"`
	}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	status, ok := model.ParseCandidateStatus(body.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid candidate status: %s", body.Status),
		})
		return
	}

	candidate, err := pc.Store.UpdateCandidateStatus(c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// GetCandidateMatches scores the candidate against every open job and
// returns matches at or above min_score (default 40), best first.
func (pc *PipelineController) GetCandidateMatches(c *gin.Context) {
	minScore := utilities.IntQuery(c.Query("min_score"), 40)
	if minScore < 0 || minScore > 100 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("min_score must be between 0 and 100, got %d", minScore),
		})
		return
	}

	matches, err := pc.Matcher.FindMatchingJobs(c.Param("id"), minScore)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// journeyApplication is one application in a candidate journey view
type journeyApplication struct {
	ApplicationID         string                     `json:"application_id"`
	JobID                 string                     `json:"job_id"`
	JobTitle              string                     `json:"job_title"`
	Status                model.ApplicationStatus    `json:"status"`
	Source                model.ApplicationSource    `json:"source"`
	AppliedAt             time.Time                  `json:"applied_at"`
	DaysInPipeline        int                        `json:"days_in_pipeline"`
	DaysInCurrentStage    int                        `json:"days_in_current_stage"`
	CurrentInterviewRound int                        `json:"current_interview_round"`
	StatusHistory         []model.StatusHistoryEntry `json:"status_history"`
	Assessments           []assessmentSummary        `json:"assessments"`
	RecruiterNotes        int                        `json:"recruiter_notes"`
}

type assessmentSummary struct {
	Type        model.AssessmentType `json:"type"`
	Score       float64              `json:"score"`
	MaxScore    float64              `json:"max_score"`
	Percentile  int                  `json:"percentile"`
	CompletedAt time.Time            `json:"completed_at"`
}

// GetCandidateJourney returns the full end-to-end view of a candidate's
// history: every application with its transitions, assessments, and note
// count. A job title that no longer resolves renders as "Unknown" rather
// than failing the whole view.
func (pc *PipelineController) GetCandidateJourney(c *gin.Context) {
	candidate, err := pc.Store.FindCandidate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	apps := pc.Store.ApplicationsByCandidate(candidate.ID)
	views := make([]journeyApplication, 0, len(apps))
	active := 0
	for _, a := range apps {
		if !workflow.IsTerminal(a.Status) {
			active++
		}
		title := "Unknown"
		if job, err := pc.Store.FindJob(a.JobID); err == nil {
			title = job.Title
		}
		summaries := []assessmentSummary{}
		for _, ar := range pc.Store.AssessmentsByApplication(a.ID) {
			summaries = append(summaries, assessmentSummary{
				Type:        ar.Type,
				Score:       ar.Score,
				MaxScore:    ar.MaxScore,
				Percentile:  ar.Percentile,
				CompletedAt: ar.CompletedAt,
			})
		}
		views = append(views, journeyApplication{
			ApplicationID:         a.ID,
			JobID:                 a.JobID,
			JobTitle:              title,
			Status:                a.Status,
			Source:                a.Source,
			AppliedAt:             a.AppliedAt,
			DaysInPipeline:        int(time.Since(a.AppliedAt).Hours() / 24),
			DaysInCurrentStage:    pc.Workflow.DaysInCurrentStage(a),
			CurrentInterviewRound: a.CurrentInterviewRound,
			StatusHistory:         a.StatusHistory,
			Assessments:           summaries,
			RecruiterNotes:        len(a.Notes),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"candidate_id":        candidate.ID,
		"name":                candidate.Name,
		"status":              candidate.Status,
		"total_applications":  len(apps),
		"active_applications": active,
		"applications":        views,
	})
}
