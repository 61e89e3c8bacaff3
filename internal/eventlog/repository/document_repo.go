package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
)

const (
	docKeyPrefix  = "viz:doc:" // Key for one stored document: viz:doc:{doc_id}
	defaultDocTTL = 24 * time.Hour
)

// StoredDocument is a session-scoped upload. Documents are immutable for
// their lifetime and expire with the session TTL; there is no durable
// persistence behind this store.
type StoredDocument struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	UploadedAt time.Time       `json:"uploaded_at"`
	Document   domain.Document `json:"document"`
}

// DocumentRepository handles Redis operations for uploaded documents.
type DocumentRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDocumentRepository(client *redis.Client, ttl time.Duration) *DocumentRepository {
	if ttl <= 0 {
		ttl = defaultDocTTL
	}
	return &DocumentRepository{client: client, ttl: ttl}
}

func (r *DocumentRepository) docKey(id string) string {
	return docKeyPrefix + id
}

// Save stores a document, assigning an ID and upload time when missing.
func (r *DocumentRepository) Save(ctx context.Context, doc *StoredDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := r.client.Set(ctx, r.docKey(doc.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Get retrieves a stored document by its ID.
func (r *DocumentRepository) Get(ctx context.Context, id string) (*StoredDocument, error) {
	data, err := r.client.Get(ctx, r.docKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc StoredDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// Delete removes a stored document. Deleting an unknown ID is a no-op.
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.docKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
