package quote

import (
	"time"

	"travelquote/internal/bundling"
	"travelquote/internal/itinerary"
	"travelquote/internal/scoring"
)

type QuoteRequest struct {
	QuoteID string                 `json:"quote_id,omitempty"`
	Items   []itinerary.Item       `json:"items"`
	Trip    itinerary.TripMetadata `json:"trip"`
	// Pricing defaults to the sum of item prices.
	Pricing *scoring.Pricing `json:"pricing,omitempty"`
}

type ConflictsRequest struct {
	Items []itinerary.Item `json:"items"`
}

type Evaluation struct {
	Conflicts   map[string]itinerary.Conflict `json:"conflicts"`
	Suggestions []bundling.BundleSuggestion   `json:"suggestions"`
	Score       scoring.QuoteScore            `json:"score"`
	Metadata    Metadata                      `json:"metadata"`
}

type Metadata struct {
	ItemCount   int    `json:"item_count"`
	EvalTimeMs  int64  `json:"eval_time_ms"`
	CacheHit    bool   `json:"cache_hit"`
	CacheKey    string `json:"cache_key,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

type ConflictsResponse struct {
	Conflicts map[string]itinerary.Conflict `json:"conflicts"`
	Count     int                           `json:"count"`
}

type ScoreSnapshot struct {
	ID        int64              `json:"id"`
	QuoteID   string             `json:"quote_id"`
	Score     scoring.QuoteScore `json:"score"`
	CreatedAt time.Time          `json:"created_at"`
}

type ScoreHistoryResponse struct {
	QuoteID   string          `json:"quote_id"`
	Snapshots []ScoreSnapshot `json:"snapshots"`
}

type WorkspaceRequest struct {
	Items []itinerary.Item       `json:"items"`
	Trip  itinerary.TripMetadata `json:"trip"`
}

type WorkspaceView struct {
	ID          string                      `json:"id"`
	Enabled     bool                        `json:"enabled"`
	Suggestions []bundling.BundleSuggestion `json:"suggestions"`
}

type SnoozeRequest struct {
	// Zero uses the configured default.
	Seconds int `json:"seconds"`
}

type AcceptResponse struct {
	Suggestion bundling.BundleSuggestion `json:"suggestion"`
	NavigateTo itinerary.Kind            `json:"navigate_to"`
	Workspace  WorkspaceView             `json:"workspace"`
}

// evaluationCache is the cached, time independent part of an Evaluation.
type evaluationCache struct {
	Conflicts map[string]itinerary.Conflict `json:"conflicts"`
	Score     scoring.QuoteScore            `json:"score"`
}
