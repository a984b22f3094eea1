package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkce-it/timetabler/internal/model"
)

// GenerateResponse is the solve endpoint's envelope. Grid is present only on
// success; on infeasibility or timeout Success is false and Message explains.
type GenerateResponse struct {
	Success bool           `json:"success"`
	Grid    model.Grid     `json:"grid,omitempty"`
	Periods []model.Period `json:"periods,omitempty"`
	Message string         `json:"message"`
}

func (s *Server) generate(c *gin.Context) {
	requestId := uuid.NewString()
	c.Header("X-Request-ID", requestId)

	var input model.SnapshotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	snapshot, err := input.Snapshot()
	if err != nil {
		c.JSON(http.StatusBadRequest, GenerateResponse{Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	result, err := s.timetabler.Build(ctx, snapshot, input.Scope())
	if err != nil {
		var internalErr model.InternalError
		if errors.As(err, &internalErr) {
			s.log.Errorf("solve %v failed: %v", requestId, err)
			c.JSON(http.StatusInternalServerError, GenerateResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, GenerateResponse{Message: err.Error()})
		return
	}

	s.log.Debugw("solve finished", map[string]any{
		"request": requestId,
		"section": input.Section,
		"outcome": result.Outcome.String(),
		"nodes":   result.Nodes,
	})

	c.JSON(http.StatusOK, GenerateResponse{
		Success: result.Solved(),
		Grid:    result.Grid,
		Periods: result.Periods,
		Message: result.Message,
	})
}
