package quote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travelquote/internal/scoring"
	"travelquote/pkg/db/dbmock"
)

func sampleScore() scoring.QuoteScore {
	return scoring.QuoteScore{
		Metrics: []scoring.Metric{{Name: scoring.MetricExperience, Score: 90, Weight: 30}},
		Overall: 82,
		Grade:   "A",
		Summary: "summary",
		Tip:     scoring.WellOptimized,
	}
}

func TestScoreRepository_Save(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockDB := new(dbmock.MockSQLExecutor)
		mockResult := new(dbmock.MockResult)
		repo := NewScoreRepository(mockDB)

		ctx := context.Background()
		at := time.Date(2026, 7, 1, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
		score := sampleScore()
		metrics, err := json.Marshal(score.Metrics)
		require.NoError(t, err)

		mockDB.On("ExecContext", ctx, insertScoreQuery,
			[]any{"Q-1", 82, "A", "summary", scoring.WellOptimized, metrics, at.UTC()}).
			Return(mockResult, nil)

		err = repo.Save(ctx, "Q-1", score, at)

		assert.NoError(t, err)
		mockDB.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockDB := new(dbmock.MockSQLExecutor)
		repo := NewScoreRepository(mockDB)
		expectedErr := errors.New("connection refused")

		mockDB.On("ExecContext", mock.Anything, insertScoreQuery, mock.Anything).Return(nil, expectedErr)

		err := repo.Save(context.Background(), "Q-1", sampleScore(), time.Now())

		assert.ErrorIs(t, err, expectedErr)
		assert.NotErrorIs(t, err, ErrHistoryDisabled)
		mockDB.AssertExpectations(t)
	})

	t.Run("missing table", func(t *testing.T) {
		mockDB := new(dbmock.MockSQLExecutor)
		repo := NewScoreRepository(mockDB)

		mockDB.On("ExecContext", mock.Anything, insertScoreQuery, mock.Anything).
			Return(nil, &pq.Error{Code: pgUndefinedTable, Message: `relation "quote_scores" does not exist`})

		err := repo.Save(context.Background(), "Q-1", sampleScore(), time.Now())

		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})
}

func TestScoreRepository_HistoryQueryError(t *testing.T) {
	mockDB := new(dbmock.MockSQLExecutor)
	repo := NewScoreRepository(mockDB)
	ctx := context.Background()
	expectedErr := errors.New("timeout")

	mockDB.On("QueryContext", ctx, selectScoresQuery, []any{"Q-1", 5}).Return(nil, expectedErr)

	_, err := repo.History(ctx, "Q-1", 5)

	assert.ErrorIs(t, err, expectedErr)
	mockDB.AssertExpectations(t)
}
