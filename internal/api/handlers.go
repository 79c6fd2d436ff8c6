package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nordlex/legal-analyzer/internal/auth"
	"github.com/nordlex/legal-analyzer/internal/langid"
	"github.com/nordlex/legal-analyzer/internal/statement"
	"github.com/nordlex/legal-analyzer/pkg/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClientID == "" || req.ClientSecret == "" {
		respondError(w, http.StatusBadRequest, "client_id and client_secret are required")
		return
	}

	token, err := s.authService.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// AnalyzePairRequest is the request body for pairwise analysis. Each text
// is treated as one statement; language codes are optional and identified
// when absent.
type AnalyzePairRequest struct {
	Text1     string `json:"text1"`
	Text2     string `json:"text2"`
	Language1 string `json:"language1,omitempty"`
	Language2 string `json:"language2,omitempty"`
}

func (s *Server) handleAnalyzePair(w http.ResponseWriter, r *http.Request) {
	var req AnalyzePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text1 == "" || req.Text2 == "" {
		respondError(w, http.StatusBadRequest, "text1 and text2 are required")
		return
	}
	if req.Language1 != "" {
		req.Language1 = langid.Normalize(req.Language1)
	}
	if req.Language2 != "" {
		req.Language2 = langid.Normalize(req.Language2)
	}

	ctx := r.Context()

	stmt1, err := s.extractor.Build(ctx, req.Text1, req.Language1)
	if err != nil {
		s.logger.Error("failed to build statement", slog.String("error", err.Error()))
		respondError(w, http.StatusBadGateway, "failed to analyze statement")
		return
	}
	stmt2, err := s.extractor.Build(ctx, req.Text2, req.Language2)
	if err != nil {
		s.logger.Error("failed to build statement", slog.String("error", err.Error()))
		respondError(w, http.StatusBadGateway, "failed to analyze statement")
		return
	}

	finding, err := s.engine.Detect(stmt1, stmt2)
	if err != nil {
		if errors.Is(err, statement.ErrMissingEmbedding) || errors.Is(err, statement.ErrDimensionMismatch) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "detection failed")
		return
	}

	respondJSON(w, http.StatusOK, models.Contradiction{
		Statement1:  stmt1.Text,
		Statement2:  stmt2.Text,
		PatternType: string(finding.Pattern),
		Confidence:  finding.Confidence,
		Explanation: finding.Explanation,
	})
}

func claimsClientID(r *http.Request) string {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		return claims.ClientID
	}
	return ""
}
