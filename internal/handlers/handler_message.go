package handlers

import (
	"io"
	"net/http"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/finflowhq/finflow_bot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voiceSizeCap bounds one uploaded voice note (20 MB, the transport's own cap).
const voiceSizeCap = 20 << 20

type messageHandler struct {
	accountService portssvc.AccountSvc
	financeService portssvc.FinanceSvc
}

func newMessageHandler(accountService portssvc.AccountSvc, financeService portssvc.FinanceSvc) *messageHandler {
	return &messageHandler{accountService: accountService, financeService: financeService}
}

func registerMessageRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, accountService portssvc.AccountSvc, financeService portssvc.FinanceSvc) {
	h := newMessageHandler(accountService, financeService)

	rg.POST("/messages", h.ingestText)
	rg.POST("/messages/voice", requireFeature(access, domain.FeatureVoiceAnalysis), h.ingestVoice)
}

// ingestText godoc
// @Summary Ingest a text message
// @Description Extracts transactions from free text and records them
// @Tags messages
// @Accept json
// @Produce json
// @Param message body dto.MessageRequest true "Message text"
// @Success 200 {object} dto.IngestResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Monthly quota exhausted"
// @Security BearerAuth
// @Router /messages [post]
func (h *messageHandler) ingestText(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.ensureAccount(c, accountID)

	result, err := h.financeService.IngestText(c.Request.Context(), accountID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ingestVoice godoc
// @Summary Ingest a voice message
// @Description Transcribes the audio, then extracts and records transactions
// @Tags messages
// @Accept mpfd
// @Produce json
// @Param audio formData file true "Voice recording"
// @Success 200 {object} dto.IngestResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Feature not granted"
// @Failure 429 {object} map[string]string "Monthly quota exhausted"
// @Security BearerAuth
// @Router /messages/voice [post]
func (h *messageHandler) ingestVoice(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	if fileHeader.Size > voiceSizeCap {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open audio file"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read audio file"})
		return
	}

	h.ensureAccount(c, accountID)

	result, err := h.financeService.IngestVoice(c.Request.Context(), accountID, fileHeader.Filename, audio)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ensureAccount registers the account on first contact using the identity
// headers the transport gateway forwards. Failures are logged, not fatal.
func (h *messageHandler) ensureAccount(c *gin.Context, accountID int64) {
	username := c.GetHeader("X-Chat-Username")
	firstName := c.GetHeader("X-Chat-First-Name")
	if err := h.accountService.EnsureAccount(c.Request.Context(), accountID, username, firstName); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to ensure account", "error", err.Error())
	}
}
