package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meeting-insights/internal/insight"
	"meeting-insights/pkg/response"
)

// Analyze godoc
// @Summary     Analyze meeting minutes
// @Description Extracts participation, tasks and decisions from an uploaded .txt file or pasted text.
// @Description The upload wins when both are sent. Nothing to analyze answers 204.
// @Tags        Insights
// @Accept      multipart/form-data,json
// @Produce     json
// @Param       file formData file   false "Minutes as a UTF-8 or UTF-16 .txt file"
// @Param       text formData string false "Pasted minutes"
// @Success     200 {object} analyzeResp
// @Success     204 {string} string "No text supplied"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Upload too large"
// @Failure     415 {object} response.Resp "Upload is not UTF-8/UTF-16 text"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/insights [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, insight.ErrEmptyInput) {
			response.NoContent(c)
			return
		}
		h.reportError(c, "uc.Analyze", err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Detail godoc
// @Summary     Get a stored analysis
// @Description Returns an analysis by id while it is still cached.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Analysis ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/insights/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Export godoc
// @Summary     Download an analysis
// @Description Renders a stored analysis as meeting_insights.md, .html or .json.
// @Tags        Insights
// @Produce     text/markdown,text/html,application/json
// @Param       id     path  string true  "Analysis ID"
// @Param       format query string false "markdown (default), html or json"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Unsupported format"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/insights/{id}/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Attachment(c, output.FileName, output.ContentType, output.Content)
}

// Schedule godoc
// @Summary     Add dated tasks to the calendar
// @Description Creates an all-day Google Calendar event on the due date of every dated task.
// @Tags        Insights
// @Produce     json
// @Param       id path string true "Analysis ID"
// @Success     200 {object} scheduleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     501 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/insights/{id}/calendar [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Schedule(ctx, insight.ScheduleInput{ID: id})
	if err != nil {
		h.reportError(c, "uc.Schedule", err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
