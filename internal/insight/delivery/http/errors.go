package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-insights/internal/insight"
	pkgErrors "meeting-insights/pkg/errors"
	"meeting-insights/pkg/response"
)

var (
	errIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errBadRequest   = pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request body")
	errBodyTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, insight.ErrUploadTooLarge.Error())
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, insight.ErrAnalysisNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, insight.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, insight.ErrInvalidEncoding):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, insight.ErrUploadTooLarge):
		return errBodyTooLarge
	case errors.Is(err, insight.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, err.Error())
	case errors.Is(err, insight.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// reportError writes the mapped error. Client errors log at warn, the rest at error.
func (h *handler) reportError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)
	if pkgErrors.StatusCode(mapped) < http.StatusInternalServerError {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	response.Error(c, mapped)
}
