package data

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	insertResultSQL = `INSERT INTO result (
			model_name,
			entity_score,
			dev_score,
			community_score,
			technical_score,
			final_score,
			scored_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(model_name) DO UPDATE SET
			entity_score = ?,
			dev_score = ?,
			community_score = ?,
			technical_score = ?,
			final_score = ?,
			scored_at = ?
	`

	selectResultSQL = `SELECT
			model_name,
			entity_score,
			dev_score,
			community_score,
			technical_score,
			final_score,
			scored_at
		FROM result
		WHERE model_name = ?
	`

	selectLeaderboardSQL = `SELECT
			model_name,
			entity_score,
			dev_score,
			community_score,
			technical_score,
			final_score,
			scored_at
		FROM result
		ORDER BY final_score DESC, model_name ASC
		LIMIT ?
	`
)

// Result is one persisted scoring outcome.
type Result struct {
	ModelName      string    `json:"model_name" yaml:"model_name"`
	EntityScore    float64   `json:"entity_score" yaml:"entity_score"`
	DevScore       float64   `json:"dev_score" yaml:"dev_score"`
	CommunityScore float64   `json:"community_score" yaml:"community_score"`
	TechnicalScore float64   `json:"technical_score" yaml:"technical_score"`
	FinalScore     float64   `json:"final_score" yaml:"final_score"`
	ScoredAt       time.Time `json:"scored_at" yaml:"scored_at"`
}

// SaveResult upserts the result keyed by model name; re-scoring a model
// replaces its previous row.
func (r *Result) Save(db *sql.DB) error {
	if db == nil {
		return errDBNotInitialized
	}
	if r.ModelName == "" {
		return errors.New("result model name not specified")
	}

	stmt, err := db.Prepare(insertResultSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare result insert statement: %w", err)
	}
	defer stmt.Close()

	at := r.ScoredAt.UTC().Format(time.RFC3339)
	if _, err := stmt.Exec(
		r.ModelName, r.EntityScore, r.DevScore, r.CommunityScore, r.TechnicalScore, r.FinalScore, at,
		r.EntityScore, r.DevScore, r.CommunityScore, r.TechnicalScore, r.FinalScore, at,
	); err != nil {
		return fmt.Errorf("failed to save result for %s: %w", r.ModelName, err)
	}

	return nil
}

// GetResult returns the stored result for a model, or sql.ErrNoRows when
// the model has never been scored.
func GetResult(db *sql.DB, modelName string) (*Result, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	row := db.QueryRow(selectResultSQL, modelName)
	r, err := scanResult(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get result for %s: %w", modelName, err)
	}
	return r, nil
}

// GetLeaderboard returns stored results ordered by final score descending,
// ties broken by model name. limit <= 0 returns all rows.
func GetLeaderboard(db *sql.DB, limit int) ([]*Result, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.Query(selectLeaderboardSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute leaderboard select statement: %w", err)
	}
	defer rows.Close()

	list := make([]*Result, 0)
	for rows.Next() {
		r, err := scanResult(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}

	return list, nil
}

func scanResult(scan func(dest ...any) error) (*Result, error) {
	var r Result
	var at string
	if err := scan(
		&r.ModelName, &r.EntityScore, &r.DevScore, &r.CommunityScore, &r.TechnicalScore, &r.FinalScore, &at,
	); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scored_at %q: %w", at, err)
	}
	r.ScoredAt = t

	return &r, nil
}
