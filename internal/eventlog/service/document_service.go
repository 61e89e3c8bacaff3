package service

import (
	"context"
	"fmt"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/analysis"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/parser"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/validator"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/repository"
)

// DocumentService handles upload and lifecycle of robot log documents.
type DocumentService struct {
	repo *repository.DocumentRepository
}

func NewDocumentService(repo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// UploadResult summarizes an accepted upload. Notice carries the "no data"
// information for empty or fully skipped documents; it is not an error.
type UploadResult struct {
	DocumentID    string             `json:"document_id"`
	Title         string             `json:"title"`
	Summary       validator.Summary  `json:"summary"`
	Topics        []string           `json:"topics"`
	TimeRange     analysis.TimeRange `json:"time_range"`
	HasTimestamps bool               `json:"has_timestamps"`
	Notice        string             `json:"notice,omitempty"`
}

// Upload validates, parses and stores a raw log document. Individual
// malformed events are kept (they may still carry topics) and only excluded
// from the edge set downstream; a document that is not a robot log at all is
// rejected.
func (s *DocumentService) Upload(ctx context.Context, raw []byte, title string) (*UploadResult, error) {
	if err := validator.ValidateBytes(raw); err != nil {
		return nil, err
	}
	doc, err := parser.ParseJSONBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}

	stored := &repository.StoredDocument{Title: title, Document: *doc}
	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, err
	}

	summary := validator.Summarize(doc)
	tr, hasTS := analysis.Range(doc)
	res := &UploadResult{
		DocumentID:    stored.ID,
		Title:         stored.Title,
		Summary:       summary,
		Topics:        analysis.Topics(doc),
		TimeRange:     tr,
		HasTimestamps: hasTS,
	}
	if summary.TotalEvents == 0 {
		res.Notice = "document contains no events"
	} else if summary.EdgeEvents == 0 {
		res.Notice = "no events with both endpoints; graph will be empty"
	}
	return res, nil
}

// Get retrieves a stored document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*repository.StoredDocument, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a stored document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
