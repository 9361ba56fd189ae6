package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"travelquote/internal/scoring"
	"travelquote/pkg/db"
)

// ScoreRepository stores score snapshots so agents can see how a quote
// improved over time.
type ScoreRepository interface {
	Save(ctx context.Context, quoteID string, score scoring.QuoteScore, at time.Time) error
	History(ctx context.Context, quoteID string, limit int) ([]ScoreSnapshot, error)
}

const (
	insertScoreQuery = `INSERT INTO quote_scores (quote_id, overall, grade, summary, tip, metrics, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectScoresQuery = `SELECT id, quote_id, overall, grade, summary, tip, metrics, created_at
FROM quote_scores
WHERE quote_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`
)

// pgUndefinedTable is raised when migrations have not been applied.
const pgUndefinedTable = "42P01"

type PostgresScoreRepository struct {
	db db.SQLExecutor
}

func NewScoreRepository(executor db.SQLExecutor) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: executor}
}

func (r *PostgresScoreRepository) Save(ctx context.Context, quoteID string, score scoring.QuoteScore, at time.Time) error {
	metrics, err := json.Marshal(score.Metrics)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertScoreQuery,
		quoteID, score.Overall, score.Grade, score.Summary, score.Tip, metrics, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to save score snapshot: %w", classify(err))
	}
	return nil
}

func (r *PostgresScoreRepository) History(ctx context.Context, quoteID string, limit int) ([]ScoreSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, selectScoresQuery, quoteID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query score history: %w", classify(err))
	}
	defer rows.Close()

	snapshots := make([]ScoreSnapshot, 0, limit)
	for rows.Next() {
		var (
			s       ScoreSnapshot
			metrics []byte
		)
		if err := rows.Scan(&s.ID, &s.QuoteID, &s.Score.Overall, &s.Score.Grade,
			&s.Score.Summary, &s.Score.Tip, &metrics, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score snapshot: %w", err)
		}
		if err := json.Unmarshal(metrics, &s.Score.Metrics); err != nil {
			return nil, fmt.Errorf("failed to decode metrics of snapshot %d: %w", s.ID, err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score history: %w", err)
	}
	return snapshots, nil
}

// classify turns a missing table into ErrHistoryDisabled so a database
// without migrations reads as an unconfigured feature.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUndefinedTable {
		return fmt.Errorf("%w: %s", ErrHistoryDisabled, pqErr.Message)
	}
	return err
}
