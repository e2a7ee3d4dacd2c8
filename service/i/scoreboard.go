package i

import "context"

// ScoreEntry is one scoreboard row: a member tag and its best score.
type ScoreEntry struct {
	Member string
	Score  float64
}

// Scoreboard maintains the ranked evaluation scores backing the results
// dashboard.
type Scoreboard interface {
	// Record upserts the score for a member, keeping the highest value.
	Record(ctx context.Context, member string, score float64) error

	// Top returns the n highest-scoring entries in descending order.
	Top(ctx context.Context, n int64) ([]ScoreEntry, error)
}
