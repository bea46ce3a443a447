package handlers

import (
	"net/http"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/finflowhq/finflow_bot/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvc
}

func newReportHandler(reportService portssvc.ReportSvc) *reportHandler {
	return &reportHandler{reportService: reportService}
}

func registerReportRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, reportService portssvc.ReportSvc) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/weekly", requireFeature(access, domain.FeatureWeeklyReport), h.weekly)
		reports.GET("/monthly", requireFeature(access, domain.FeatureMonthlyReport), h.monthly)
	}
}

// weekly godoc
// @Summary Weekly summary with AI narrative
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Report
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /reports/weekly [get]
func (h *reportHandler) weekly(c *gin.Context) {
	h.generate(c, dto.ReportWeekly)
}

// monthly godoc
// @Summary Monthly summary with AI narrative
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Report
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) monthly(c *gin.Context) {
	h.generate(c, dto.ReportMonthly)
}

func (h *reportHandler) generate(c *gin.Context, kind dto.ReportKind) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), accountID, kind)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
