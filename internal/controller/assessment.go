package controller

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/utilities"
)

// GetAssessments returns a candidate's assessment results, most recent
// first. A type query parameter narrows to the latest result of that type.
func (pc *PipelineController) GetAssessments(c *gin.Context) {
	id := c.Param("id")
	if _, err := pc.Store.FindCandidate(id); err != nil {
		respondError(c, err)
		return
	}

	if raw := c.Query("type"); raw != "" {
		t, ok := model.ParseAssessmentType(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid assessment type: %s", raw),
			})
			return
		}
		result, err := pc.Store.LatestAssessmentByType(id, t)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusOK, pc.Store.AssessmentsByCandidate(id))
}

// GetAverageScore averages the candidate's assessment score percentages.
func (pc *PipelineController) GetAverageScore(c *gin.Context) {
	id := c.Param("id")
	if _, err := pc.Store.FindCandidate(id); err != nil {
		respondError(c, err)
		return
	}

	avg, ok := pc.Store.AverageScorePercent(id)
	c.JSON(http.StatusOK, gin.H{
		"candidate_id":          id,
		"assessments_completed": len(pc.Store.AssessmentsByCandidate(id)),
		"average_score_percent": math.Round(avg*10) / 10,
		"has_assessments":       ok,
	})
}
