package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// UploadRaw accepts a JSON body {"title": ..., "document": {...}} where
// document is the robot log itself.
func (h *Handler) UploadRaw(c *gin.Context) {
	var req uploadRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if len(req.Document) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document is required"})
		return
	}
	title := req.Title
	if title == "" {
		title = "Uploaded"
	}

	res, err := h.docs.Upload(c.Request.Context(), req.Document, title)
	if err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UploadFile accepts a multipart form with a "file" field holding the log.
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		base := filepath.Base(file.Filename)
		title = strings.TrimSuffix(base, filepath.Ext(base))
		if title == "" {
			title = "Uploaded"
		}
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	res, err := h.docs.Upload(c.Request.Context(), raw, title)
	if err != nil {
		h.uploadError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) uploadError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidDocument) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid robot data format: " + err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document"})
}
