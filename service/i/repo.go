package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines the interface for persisting accepted mazes.
type MazeRepo interface {
	// Save stores an accepted maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

// EvalRepo defines the interface for persisting agent evaluation runs.
type EvalRepo interface {
	// Save stores an evaluation run.
	Save(ctx context.Context, run *dmn.EvalRun) error

	// ByMaze lists the runs recorded against a maze.
	ByMaze(ctx context.Context, mazeID uuid.UUID) ([]*dmn.EvalRun, error)
}
