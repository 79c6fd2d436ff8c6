package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Statement is a persisted semantic statement. The linguistic annotations
// needed for detection are rebuilt from the lexicon at analysis time; only
// the expensive artifact, the embedding, is stored.
type Statement struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Text       string
	Language   string
	Position   int
	Embedding  pgvector.Vector
	Confidence float64
	CreatedAt  time.Time
}

// StatementRepository defines statement storage operations.
type StatementRepository interface {
	CreateBatch(ctx context.Context, statements []*Statement) error
	GetByID(ctx context.Context, id uuid.UUID) (*Statement, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*Statement, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}

// PostgresStatementRepository implements StatementRepository on PostgreSQL
// with pgvector.
type PostgresStatementRepository struct {
	db *sql.DB
}

// NewPostgresStatementRepository creates the repository.
func NewPostgresStatementRepository(db *sql.DB) *PostgresStatementRepository {
	return &PostgresStatementRepository{db: db}
}

// CreateBatch inserts statements in a single transaction.
func (r *PostgresStatementRepository) CreateBatch(ctx context.Context, statements []*Statement) error {
	if len(statements) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO statements (id, document_id, text, language, position, embedding, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, s := range statements {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}

		_, err := stmt.ExecContext(ctx,
			s.ID,
			s.DocumentID,
			s.Text,
			s.Language,
			s.Position,
			s.Embedding,
			s.Confidence,
			s.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a statement by ID, or nil when absent.
func (r *PostgresStatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*Statement, error) {
	query := `
		SELECT id, document_id, text, language, position, embedding, confidence, created_at
		FROM statements
		WHERE id = $1
	`

	statement := &Statement{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&statement.ID,
		&statement.DocumentID,
		&statement.Text,
		&statement.Language,
		&statement.Position,
		&statement.Embedding,
		&statement.Confidence,
		&statement.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return statement, nil
}

// GetByDocumentID retrieves all statements of a document in text order.
func (r *PostgresStatementRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*Statement, error) {
	query := `
		SELECT id, document_id, text, language, position, embedding, confidence, created_at
		FROM statements
		WHERE document_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []*Statement
	for rows.Next() {
		statement := &Statement{}
		err := rows.Scan(
			&statement.ID,
			&statement.DocumentID,
			&statement.Text,
			&statement.Language,
			&statement.Position,
			&statement.Embedding,
			&statement.Confidence,
			&statement.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return statements, nil
}

// DeleteByDocumentID removes all statements of a document.
func (r *PostgresStatementRepository) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statements WHERE document_id = $1`, documentID)
	return err
}
