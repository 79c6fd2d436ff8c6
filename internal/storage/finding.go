package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Finding is a persisted contradiction finding between two statements.
type Finding struct {
	ID           uuid.UUID
	Statement1ID uuid.UUID
	Statement2ID uuid.UUID
	Pattern      string
	Confidence   float64
	Explanation  string
	Similarity   float64
	CreatedAt    time.Time
}

// FindingRepository defines finding storage operations.
type FindingRepository interface {
	CreateBatch(ctx context.Context, findings []*Finding) error
	GetByDocumentPair(ctx context.Context, doc1, doc2 uuid.UUID) ([]*Finding, error)
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*Finding, error)
}

// PostgresFindingRepository implements FindingRepository on PostgreSQL.
type PostgresFindingRepository struct {
	db *sql.DB
}

// NewPostgresFindingRepository creates the repository.
func NewPostgresFindingRepository(db *sql.DB) *PostgresFindingRepository {
	return &PostgresFindingRepository{db: db}
}

// CreateBatch inserts findings in a single transaction.
func (r *PostgresFindingRepository) CreateBatch(ctx context.Context, findings []*Finding) error {
	if len(findings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO findings (id, statement1_id, statement2_id, pattern, confidence, explanation, similarity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, f := range findings {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		if f.CreatedAt.IsZero() {
			f.CreatedAt = now
		}

		_, err := stmt.ExecContext(ctx,
			f.ID,
			f.Statement1ID,
			f.Statement2ID,
			f.Pattern,
			f.Confidence,
			f.Explanation,
			f.Similarity,
			f.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const findingColumns = `
	f.id, f.statement1_id, f.statement2_id, f.pattern, f.confidence, f.explanation, f.similarity, f.created_at
`

// GetByDocumentPair retrieves findings between two specific documents,
// highest confidence first.
func (r *PostgresFindingRepository) GetByDocumentPair(ctx context.Context, doc1, doc2 uuid.UUID) ([]*Finding, error) {
	query := `
		SELECT ` + findingColumns + `
		FROM findings f
		JOIN statements s1 ON f.statement1_id = s1.id
		JOIN statements s2 ON f.statement2_id = s2.id
		WHERE s1.document_id = $1 AND s2.document_id = $2
		ORDER BY f.confidence DESC
	`
	return r.queryFindings(ctx, query, doc1, doc2)
}

// GetByDocumentID retrieves findings touching any statement of a document,
// highest confidence first.
func (r *PostgresFindingRepository) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*Finding, error) {
	query := `
		SELECT ` + findingColumns + `
		FROM findings f
		JOIN statements s1 ON f.statement1_id = s1.id
		JOIN statements s2 ON f.statement2_id = s2.id
		WHERE s1.document_id = $1 OR s2.document_id = $1
		ORDER BY f.confidence DESC
	`
	return r.queryFindings(ctx, query, documentID)
}

func (r *PostgresFindingRepository) queryFindings(ctx context.Context, query string, args ...any) ([]*Finding, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var findings []*Finding
	for rows.Next() {
		finding := &Finding{}
		err := rows.Scan(
			&finding.ID,
			&finding.Statement1ID,
			&finding.Statement2ID,
			&finding.Pattern,
			&finding.Confidence,
			&finding.Explanation,
			&finding.Similarity,
			&finding.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		findings = append(findings, finding)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return findings, nil
}
