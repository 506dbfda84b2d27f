package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const multipartMemory = 8 << 20

// processAnalyzeReq reads a multipart form (file, text), a url-encoded form (text)
// or a JSON body ({"text": ...}). Bodies over maxBodyBytes yield 413.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	contentType := c.ContentType()
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			return req, bodyError(err)
		}
		req.Text = c.PostForm("text")

		fh, err := c.FormFile("file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return req, nil
			}
			return req, bodyError(err)
		}
		f, err := fh.Open()
		if err != nil {
			return req, bodyError(err)
		}
		defer f.Close()

		if req.Upload, err = io.ReadAll(f); err != nil {
			return req, bodyError(err)
		}
		req.FileName = fh.Filename

	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := c.Request.ParseForm(); err != nil {
			return req, bodyError(err)
		}
		req.Text = c.Request.PostFormValue("text")

	default:
		if c.Request.ContentLength == 0 {
			return req, nil
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, bodyError(err)
		}
	}

	return req, nil
}

// processExportReq reads the path id and the format query parameter.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errBadRequest
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return errBadRequest
}
