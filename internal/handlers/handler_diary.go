package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/finflowhq/finflow_bot/internal/utils"
	"github.com/gin-gonic/gin"
)

type diaryHandler struct {
	diaryService portssvc.DiarySvc
}

func newDiaryHandler(diaryService portssvc.DiarySvc) *diaryHandler {
	return &diaryHandler{diaryService: diaryService}
}

func registerDiaryRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, diaryService portssvc.DiarySvc) {
	h := newDiaryHandler(diaryService)

	diary := rg.Group("/diary", requireFeature(access, domain.FeatureDiary))
	{
		diary.POST("", h.addEntry)
		diary.GET("", h.listEntries)
	}
}

// addEntry godoc
// @Summary Record a journal entry
// @Description Premium accounts get an AI reflection attached
// @Tags diary
// @Accept json
// @Produce json
// @Param entry body dto.DiaryRequest true "Entry content"
// @Success 201 {object} domain.DiaryEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /diary [post]
func (h *diaryHandler) addEntry(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.DiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.diaryService.AddEntry(c.Request.Context(), accountID, req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// listEntries godoc
// @Summary List recent journal entries
// @Tags diary
// @Produce json
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {array} dto.DiaryEntryResponse
// @Security BearerAuth
// @Router /diary [get]
func (h *diaryHandler) listEntries(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.diaryService.RecentEntries(c.Request.Context(), accountID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	now := time.Now().UTC()
	responses := make([]dto.DiaryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.DiaryEntryResponse{
			DiaryEntry:       entry,
			DateText:         utils.FormatDateLong(entry.EntryDate),
			RelativeDateText: utils.FormatRelativeDate(entry.EntryDate, now),
		})
	}
	c.JSON(http.StatusOK, responses)
}
