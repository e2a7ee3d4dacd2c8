package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyModelName   = errors.New("model name is empty")
	ErrInvalidMoveCount = errors.New("move count must be positive")
)

// EvalRun records one solving-agent attempt against a stored maze: which
// model played, how many moves it spent and whether it reached the goal.
// Score is the efficiency of the run relative to the solver's shortest
// path: shortestPath / moves for solved runs, 0 for failed ones.
type EvalRun struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	UserID    uuid.UUID `bson:"userId" json:"userId"`
	MazeID    uuid.UUID `bson:"mazeId" json:"mazeId"`
	Model     string    `bson:"model" json:"model"`
	Moves     int       `bson:"moves" json:"moves"`
	Solved    bool      `bson:"solved" json:"solved"`
	Score     float64   `bson:"score" json:"score"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// NewEvalRun validates the raw run facts and computes the score.
func NewEvalRun(userID, mazeID uuid.UUID, model string, moves int, solved bool, shortestPath int) (*EvalRun, error) {
	if model == "" {
		return nil, ErrEmptyModelName
	}
	if moves <= 0 {
		return nil, ErrInvalidMoveCount
	}

	score := 0.0
	if solved && shortestPath > 0 {
		score = float64(shortestPath) / float64(moves)
		if score > 1 {
			score = 1
		}
	}

	return &EvalRun{
		ID:        uuid.New(),
		UserID:    userID,
		MazeID:    mazeID,
		Model:     model,
		Moves:     moves,
		Solved:    solved,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}, nil
}
