// Package controller holds the HTTP handlers over the pipeline core. Each
// handler parses plain request values, calls into the store or an engine,
// and renders the structured result.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentpipe-backend/internal/apperr"
	"talentpipe-backend/internal/matching"
	"talentpipe-backend/internal/store"
	"talentpipe-backend/internal/utilities"
	"talentpipe-backend/internal/workflow"
)

// PipelineController holds the store and engines for pipeline operations
type PipelineController struct {
	Store    *store.Store
	Workflow *workflow.Engine
	Matcher  *matching.Matcher
	Log      *zap.Logger
}

// NewPipelineController creates a controller bound to the provided store
func NewPipelineController(s *store.Store, log *zap.Logger) *PipelineController {
	if log == nil {
		log = zap.NewNop()
	}
	return &PipelineController{
		Store:    s,
		Workflow: workflow.NewEngine(s, log),
		Matcher:  matching.NewMatcher(s),
		Log:      log,
	}
}

// respondError maps the error taxonomy onto HTTP statuses: NotFound to 404,
// InvalidArgument to 400, everything else to 500
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var de *apperr.DomainError
	if errors.As(err, &de) {
		switch de.Type {
		case apperr.TypeNotFound:
			status = http.StatusNotFound
		case apperr.TypeInvalidArgument:
			status = http.StatusBadRequest
		}
	}
	c.JSON(status, utilities.ErrorResponse{Error: err.Error()})
}
