package service

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

// EvalService records solving-agent runs against stored mazes and keeps
// the model scoreboard behind the results dashboard up to date.
type EvalService struct {
	mazes  i.MazeRepo
	runs   i.EvalRepo
	board  i.Scoreboard
	logger i.Logger
}

// EvalServiceConfig configures an EvalService.
type EvalServiceConfig struct {
	Mazes  i.MazeRepo
	Runs   i.EvalRepo
	Board  i.Scoreboard
	Logger i.Logger
}

// NewEvalService creates an EvalService from the configuration.
func NewEvalService(cfg EvalServiceConfig) (*EvalService, error) {
	if cfg.Mazes == nil || cfg.Runs == nil || cfg.Board == nil {
		return nil, errors.New("maze repo, run repo and scoreboard are required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	return &EvalService{
		mazes:  cfg.Mazes,
		runs:   cfg.Runs,
		board:  cfg.Board,
		logger: cfg.Logger,
	}, nil
}

// RecordRun scores one agent attempt against the maze's solver stats,
// persists it and feeds the scoreboard. The scoreboard write is best
// effort; a failure there does not lose the run itself.
func (s *EvalService) RecordRun(ctx context.Context, userID, mazeID uuid.UUID, model string, moves int, solved bool) (*dmn.EvalRun, error) {
	record, err := s.mazes.ByID(ctx, mazeID)
	if err != nil {
		return nil, err
	}

	run, err := dmn.NewEvalRun(userID, mazeID, model, moves, solved, record.Stats.ShortestPath)
	if err != nil {
		return nil, err
	}

	if err := s.runs.Save(ctx, run); err != nil {
		return nil, err
	}

	if err := s.board.Record(ctx, run.Model, run.Score); err != nil {
		s.logger.Warning(fmt.Sprintf("scoreboard update failed for model %s: %s", run.Model, err))
	}

	s.logger.Info(fmt.Sprintf("recorded run %s: model=%s maze=%s solved=%t score=%.2f",
		run.ID, run.Model, mazeID, run.Solved, run.Score))
	return run, nil
}

// RunsByMaze lists the runs recorded against a maze, newest first.
func (s *EvalService) RunsByMaze(ctx context.Context, mazeID uuid.UUID) ([]*dmn.EvalRun, error) {
	return s.runs.ByMaze(ctx, mazeID)
}

// Leaderboard returns the top n scoreboard entries.
func (s *EvalService) Leaderboard(ctx context.Context, n int64) ([]i.ScoreEntry, error) {
	return s.board.Top(ctx, n)
}
