package http

import (
	"encoding/json"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/service"
)

// Handler handles HTTP requests for robot log documents.
type Handler struct {
	docs   *service.DocumentService
	graphs *service.GraphService
}

// New creates a new Handler.
func New(docs *service.DocumentService, graphs *service.GraphService) *Handler {
	return &Handler{docs: docs, graphs: graphs}
}

type uploadRawRequest struct {
	Title    string          `json:"title,omitempty"`
	Document json.RawMessage `json:"document"`
}

type documentSummaryResponse struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	UploadedAt string `json:"uploaded_at"`
	Events     int    `json:"events"`
}
