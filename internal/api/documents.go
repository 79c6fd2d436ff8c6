package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/nordlex/legal-analyzer/internal/langid"
	"github.com/nordlex/legal-analyzer/internal/statement"
	"github.com/nordlex/legal-analyzer/internal/storage"
	"github.com/nordlex/legal-analyzer/pkg/models"
)

// CreateDocumentRequest is the request body for document ingestion.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.Language != "" {
		req.Language = langid.Normalize(req.Language)
	}

	ctx := r.Context()

	hash := contentHash(req.Content)
	if existing, err := s.documents.GetByHash(ctx, hash); err == nil && existing != nil {
		respondJSON(w, http.StatusOK, toModelDocument(existing))
		return
	}

	stmts, err := s.extractor.Extract(ctx, req.Content, req.Language)
	if err != nil {
		s.logger.Error("statement extraction failed",
			slog.String("client", claimsClientID(r)),
			slog.String("error", err.Error()))
		respondError(w, http.StatusBadGateway, "statement extraction failed")
		return
	}
	if len(stmts) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "no analyzable statements in document")
		return
	}

	doc := &storage.Document{
		Title:       req.Title,
		Language:    stmts[0].Language,
		Content:     req.Content,
		ContentHash: hash,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store document")
		return
	}

	stored := make([]*storage.Statement, len(stmts))
	for i, st := range stmts {
		stored[i] = &storage.Statement{
			DocumentID: doc.ID,
			Text:       st.Text,
			Language:   st.Language,
			Position:   i,
			Embedding:  pgvector.NewVector(st.Embedding),
			Confidence: st.Confidence,
		}
	}
	if err := s.statements.CreateBatch(ctx, stored); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store statements")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"document":        toModelDocument(doc),
		"statement_count": len(stored),
	})
}

// CompareDocumentsRequest names the two documents to score against each
// other.
type CompareDocumentsRequest struct {
	Document1ID string `json:"document1_id"`
	Document2ID string `json:"document2_id"`
}

func (s *Server) handleCompareDocuments(w http.ResponseWriter, r *http.Request) {
	var req CompareDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id1, err1 := uuid.Parse(req.Document1ID)
	id2, err2 := uuid.Parse(req.Document2ID)
	if err1 != nil || err2 != nil {
		respondError(w, http.StatusBadRequest, "document ids must be valid UUIDs")
		return
	}

	ctx := r.Context()

	stored1, err := s.statements.GetByDocumentID(ctx, id1)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load statements")
		return
	}
	stored2, err := s.statements.GetByDocumentID(ctx, id2)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load statements")
		return
	}
	if len(stored1) == 0 || len(stored2) == 0 {
		respondError(w, http.StatusNotFound, "document not found or has no statements")
		return
	}

	stmts1, err := s.rebuildStatements(stored1)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	stmts2, err := s.rebuildStatements(stored2)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	findings, err := s.detection.DetectAcross(stmts1, stmts2)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	persisted := make([]*storage.Finding, len(findings))
	response := make([]models.Contradiction, len(findings))
	for i, f := range findings {
		st1 := stored1[f.Index1]
		st2 := stored2[f.Index2]

		persisted[i] = &storage.Finding{
			Statement1ID: st1.ID,
			Statement2ID: st2.ID,
			Pattern:      string(f.Pattern),
			Confidence:   f.Confidence,
			Explanation:  f.Explanation,
			Similarity:   f.Similarity,
		}
		response[i] = models.Contradiction{
			Statement1ID: st1.ID.String(),
			Statement2ID: st2.ID.String(),
			Statement1:   f.Statement1,
			Statement2:   f.Statement2,
			PatternType:  string(f.Pattern),
			Confidence:   f.Confidence,
			Explanation:  f.Explanation,
			Similarity:   f.Similarity,
		}
	}

	if err := s.findings.CreateBatch(ctx, persisted); err != nil {
		s.logger.Error("failed to persist findings", slog.String("error", err.Error()))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"contradictions": response,
		"pair_count":     len(stored1) * len(stored2),
	})
}

func (s *Server) handleGetStatements(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	stored, err := s.statements.GetByDocumentID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load statements")
		return
	}

	out := make([]models.Statement, len(stored))
	for i, st := range stored {
		out[i] = models.Statement{
			ID:         st.ID.String(),
			DocumentID: st.DocumentID.String(),
			Text:       st.Text,
			Language:   st.Language,
			Position:   st.Position,
			Confidence: st.Confidence,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetContradictions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	stored, err := s.findings.GetByDocumentID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load contradictions")
		return
	}

	out := make([]models.Contradiction, len(stored))
	for i, f := range stored {
		out[i] = models.Contradiction{
			ID:           f.ID.String(),
			Statement1ID: f.Statement1ID.String(),
			Statement2ID: f.Statement2ID.String(),
			PatternType:  f.Pattern,
			Confidence:   f.Confidence,
			Explanation:  f.Explanation,
			Similarity:   f.Similarity,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// rebuildStatements turns persisted statements back into semantic
// statements, re-deriving annotations from the lexicon. Embeddings are the
// only part that cannot be recomputed cheaply.
func (s *Server) rebuildStatements(stored []*storage.Statement) ([]*statement.SemanticStatement, error) {
	out := make([]*statement.SemanticStatement, len(stored))
	for i, st := range stored {
		stmt, err := s.extractor.Rebuild(st.Text, st.Language, st.Embedding.Slice(), st.Confidence)
		if err != nil {
			return nil, err
		}
		out[i] = stmt
	}
	return out, nil
}

func toModelDocument(doc *storage.Document) models.Document {
	return models.Document{
		ID:        doc.ID.String(),
		Title:     doc.Title,
		Language:  doc.Language,
		Hash:      doc.ContentHash,
		CreatedAt: doc.CreatedAt,
	}
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
