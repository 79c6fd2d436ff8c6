// Package storage persists documents, extracted statements and detected
// contradictions in PostgreSQL. Statement embeddings use pgvector. The
// detection core never touches this package; persistence happens in the
// service layer after analysis.
package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Document is a legal document submitted for analysis.
type Document struct {
	ID          uuid.UUID
	Title       string
	Language    string
	Content     string
	ContentHash string
	CreatedAt   time.Time
}

// DocumentRepository defines document storage operations.
type DocumentRepository interface {
	Create(ctx context.Context, document *Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetByHash(ctx context.Context, hash string) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostgresDocumentRepository implements DocumentRepository on PostgreSQL.
type PostgresDocumentRepository struct {
	db *sql.DB
}

// NewPostgresDocumentRepository creates the repository.
func NewPostgresDocumentRepository(db *sql.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

// Create inserts a document, assigning an ID and timestamp if missing.
func (r *PostgresDocumentRepository) Create(ctx context.Context, document *Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	if document.CreatedAt.IsZero() {
		document.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO documents (id, title, language, content, content_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		document.ID,
		document.Title,
		document.Language,
		document.Content,
		document.ContentHash,
		document.CreatedAt,
	)
	return err
}

// GetByID retrieves a document by ID, or nil when absent.
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	query := `
		SELECT id, title, language, content, content_hash, created_at
		FROM documents
		WHERE id = $1
	`

	document := &Document{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&document.ID,
		&document.Title,
		&document.Language,
		&document.Content,
		&document.ContentHash,
		&document.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return document, nil
}

// GetByHash retrieves a document by content hash, for deduplication.
func (r *PostgresDocumentRepository) GetByHash(ctx context.Context, hash string) (*Document, error) {
	query := `
		SELECT id, title, language, content, content_hash, created_at
		FROM documents
		WHERE content_hash = $1
	`

	document := &Document{}
	err := r.db.QueryRowContext(ctx, query, hash).Scan(
		&document.ID,
		&document.Title,
		&document.Language,
		&document.Content,
		&document.ContentHash,
		&document.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return document, nil
}

// Delete removes a document.
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return err
}
