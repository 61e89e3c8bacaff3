package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

// GetDocument returns the summary of a stored document.
func (h *Handler) GetDocument(c *gin.Context) {
	id := c.Param("id")
	stored, err := h.docs.Get(c.Request.Context(), id)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, documentSummaryResponse{
		DocumentID: stored.ID,
		Title:      stored.Title,
		UploadedAt: stored.UploadedAt.Format(time.RFC3339),
		Events:     len(stored.Document.Events),
	})
}

// DeleteDocument removes a stored document.
func (h *Handler) DeleteDocument(c *gin.Context) {
	if err := h.docs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetGraph returns the render payload: node and edge lists with display
// attributes, nothing about layout or physics.
func (h *Handler) GetGraph(c *gin.Context) {
	payload, err := h.graphs.Graph(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetGraphDOT returns the graph as GraphViz DOT text.
func (h *Handler) GetGraphDOT(c *gin.Context) {
	dot, err := h.graphs.DOT(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

// GetPath answers a shortest-path query. "No path", unknown endpoints and
// empty documents are informational outcomes, reported with 200.
func (h *Handler) GetPath(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end are required"})
		return
	}

	res, err := h.graphs.Path(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetReachable lists all nodes reachable from start with their paths.
func (h *Handler) GetReachable(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start is required"})
		return
	}

	res, err := h.graphs.Reachable(c.Request.Context(), c.Param("id"), start)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAllPaths lists the shortest path for every connected node pair.
func (h *Handler) GetAllPaths(c *gin.Context) {
	paths, err := h.graphs.AllPaths(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

// GetTopics returns the sorted topic list and inferred per-topic metadata.
func (h *Handler) GetTopics(c *gin.Context) {
	res, err := h.graphs.Topics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetTimeline returns the time range and per-topic event series, optionally
// filtered by a comma-separated topics parameter.
func (h *Handler) GetTimeline(c *gin.Context) {
	var selected []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				selected = append(selected, t)
			}
		}
	}

	res, err := h.graphs.Timeline(c.Request.Context(), c.Param("id"), selected)
	if err != nil {
		h.queryError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) queryError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrDocumentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load document"})
}
