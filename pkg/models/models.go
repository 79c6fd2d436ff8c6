// Package models holds the API-facing representations of analyzer results.
package models

import (
	"time"
)

// Document is an analyzed legal document.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

// Statement is an extracted semantic statement.
type Statement struct {
	ID         string  `json:"id"`
	DocumentID string  `json:"document_id"`
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Position   int     `json:"position"`
	Confidence float64 `json:"confidence"`
}

// Contradiction is a detected contradiction between two statements.
type Contradiction struct {
	ID           string  `json:"id,omitempty"`
	Statement1ID string  `json:"statement1_id,omitempty"`
	Statement2ID string  `json:"statement2_id,omitempty"`
	Statement1   string  `json:"statement1,omitempty"`
	Statement2   string  `json:"statement2,omitempty"`
	PatternType  string  `json:"pattern_type"`
	Confidence   float64 `json:"confidence"`
	Explanation  string  `json:"explanation"`
	Similarity   float64 `json:"similarity,omitempty"`
}
