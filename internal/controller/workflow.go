package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentpipe-backend/internal/model"
	"talentpipe-backend/internal/utilities"
	"talentpipe-backend/internal/workflow"
)

// GetWorkflowTransitions exposes the transition table. Without a from
// parameter it returns the full graph, terminal states, and stage SLAs;
// with one it returns the statuses reachable from that state.
func (pc *PipelineController) GetWorkflowTransitions(c *gin.Context) {
	raw := c.Query("from")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{
			"states":          model.AllStatuses,
			"transitions":     workflow.Transitions,
			"terminal_states": terminalStates(),
			"stage_sla_days":  workflow.StageSLADays,
		})
		return
	}

	from, ok := model.ParseApplicationStatus(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid application status: %s", raw),
		})
		return
	}
	sla, _ := workflow.StageSLA(from)
	c.JSON(http.StatusOK, gin.H{
		"from_status":       from,
		"allowed_next":      workflow.AllowedNext(from),
		"is_terminal":       workflow.IsTerminal(from),
		"expected_sla_days": sla,
	})
}

func terminalStates() []model.ApplicationStatus {
	out := []model.ApplicationStatus{}
	for _, s := range model.AllStatuses {
		if workflow.IsTerminal(s) {
			out = append(out, s)
		}
	}
	return out
}
