package handlers

import (
	"net/http"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/finflowhq/finflow_bot/internal/utils"
	"github.com/gin-gonic/gin"
)

const goalBarLength = 10

type goalHandler struct {
	goalService portssvc.GoalSvc
}

func newGoalHandler(goalService portssvc.GoalSvc) *goalHandler {
	return &goalHandler{goalService: goalService}
}

func registerGoalRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, goalService portssvc.GoalSvc) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals", requireFeature(access, domain.FeatureGoals))
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PATCH("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contributions", h.contribute)
	}
}

func toGoalResponse(goal domain.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		Goal:            goal,
		ProgressPercent: goal.ProgressPercent(),
		ProgressText:    utils.FormatPercentage(goal.CurrentAmount, goal.TargetAmount),
		ProgressBar:     utils.ProgressBar(goal.CurrentAmount, goal.TargetAmount, goalBarLength),
		DeadlineText:    utils.FormatDeadline(goal.Deadline, time.Now().UTC()),
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), accountID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGoalResponse(*goal))
}

// listGoals godoc
// @Summary List the account's goals
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), accountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	responses := make([]dto.GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = toGoalResponse(goal)
	}
	c.JSON(http.StatusOK, responses)
}

// getGoal godoc
// @Summary Get one goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGoalResponse(*goal))
}

// updateGoal godoc
// @Summary Edit a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /goals/{id} [patch]
func (h *goalHandler) updateGoal(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGoalResponse(*goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), accountID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// contribute godoc
// @Summary Add money to a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param contribution body dto.ContributionRequest true "Amount"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /goals/{id}/contributions [post]
func (h *goalHandler) contribute(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.Contribute(c.Request.Context(), accountID, c.Param("id"), req.Amount)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGoalResponse(*goal))
}
