package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"detectia-backend/internal/indicators"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis result.
func (r *PGRepo) Create(ctx context.Context, result Result) error {
	const query = `
INSERT INTO analyses (
	id, user_id, document_id, filename, analysis_type, submitted_text,
	overall_score, suspected_ai, indicators, sections, api_sources, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	indicatorsJSON, err := json.Marshal(result.Indicators)
	if err != nil {
		return err
	}
	sectionsJSON, err := json.Marshal(result.Sections)
	if err != nil {
		return err
	}
	sources := result.APISources
	if sources == nil {
		sources = map[string]bool{}
	}
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return err
	}

	var documentID any
	if result.DocumentID != "" {
		documentID = result.DocumentID
	}

	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		documentID,
		result.Filename,
		result.AnalysisType,
		result.Text,
		result.OverallScore,
		result.SuspectedAI,
		indicatorsJSON,
		sectionsJSON,
		sourcesJSON,
		result.CreatedAt,
	)
	return err
}

// GetByID returns a result owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, analysisID string) (Result, error) {
	const query = `
SELECT id, user_id, document_id, filename, analysis_type, submitted_text,
       overall_score, suspected_ai, indicators, sections, api_sources, created_at
FROM analyses
WHERE id = $1 AND user_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, analysisID, userID)
	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return result, err
}

// ListByUser returns the user's results, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Result, error) {
	const query = `
SELECT id, user_id, document_id, filename, analysis_type, submitted_text,
       overall_score, suspected_ai, indicators, sections, api_sources, created_at
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var result Result
	var documentID sql.NullString
	var indicatorsJSON, sectionsJSON, sourcesJSON []byte

	err := row.Scan(
		&result.ID,
		&result.UserID,
		&documentID,
		&result.Filename,
		&result.AnalysisType,
		&result.Text,
		&result.OverallScore,
		&result.SuspectedAI,
		&indicatorsJSON,
		&sectionsJSON,
		&sourcesJSON,
		&result.CreatedAt,
	)
	if err != nil {
		return Result{}, err
	}
	result.DocumentID = documentID.String

	if len(indicatorsJSON) > 0 {
		var set indicators.Set
		if err := json.Unmarshal(indicatorsJSON, &set); err != nil {
			return Result{}, err
		}
		result.Indicators = set
	}
	if len(sectionsJSON) > 0 {
		if err := json.Unmarshal(sectionsJSON, &result.Sections); err != nil {
			return Result{}, err
		}
	}
	if len(sourcesJSON) > 0 {
		if err := json.Unmarshal(sourcesJSON, &result.APISources); err != nil {
			return Result{}, err
		}
	}
	return result, nil
}
