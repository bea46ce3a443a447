package handlers

import (
	"fmt"
	"net/http"

	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portssvc "github.com/finflowhq/finflow_bot/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
}

func newExportHandler(exportService portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: exportService}
}

func registerExportRoutes(rg *gin.RouterGroup, access portssvc.AccessPolicySvc, exportService portssvc.ExportSvc) {
	h := newExportHandler(exportService)

	exports := rg.Group("/export")
	{
		exports.GET("/excel", requireFeature(access, domain.FeatureExcelExport), h.excel)
		// The portable-document entitlement is served as CSV.
		exports.GET("/csv", requireFeature(access, domain.FeaturePDFExport), h.csv)
	}
}

// excel godoc
// @Summary Download the ledger as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /export/excel [get]
func (h *exportHandler) excel(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.ExcelReport(c.Request.Context(), accountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.serve(c, artifact)
}

// csv godoc
// @Summary Download the ledger as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string "Feature not granted"
// @Security BearerAuth
// @Router /export/csv [get]
func (h *exportHandler) csv(c *gin.Context) {
	accountID, ok := accountFromContext(c)
	if !ok {
		return
	}

	artifact, err := h.exportService.CSVExport(c.Request.Context(), accountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	h.serve(c, artifact)
}

func (h *exportHandler) serve(c *gin.Context, artifact portssvc.ExportArtifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}
