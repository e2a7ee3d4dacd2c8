package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/maze"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
)

const (
	// defaultAttempts bounds the accept/reject loop for unconstrained
	// generation; constrainedAttempts applies when the request carries a
	// minimum shortest-path constraint.
	defaultAttempts     = 200
	constrainedAttempts = 1000

	// Early acceptance thresholds for the general generator. Past the
	// early half of the budget they are relaxed so generation still
	// terminates on awkward dimension/parameter combinations.
	minAcceptRatio = 0.15
	minAcceptPath  = 10
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrGenerationExhausted reports that no candidate within the retry
	// budget satisfied the requested constraints. It is an expected
	// outcome, not a fault; callers decide whether to relax and retry.
	ErrGenerationExhausted = errors.New("generation attempts exhausted")
)

// Difficulty names understood by the generation service.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyHack1  = "hack1"
	DifficultyHack2  = "hack2"
)

type generatorMode uint8

const (
	modeGeneral generatorMode = iota
	modeHack1
	modeHack2
)

// profile maps a difficulty name onto grid dimensions and generation
// parameters.
type profile struct {
	width             int
	height            int
	extraPathsDivisor int
	skipFeatures      bool
	holes             int
	portals           bool
	wildcard          bool
	mode              generatorMode
}

var profiles = map[string]profile{
	DifficultyEasy:   {width: 10, height: 8, extraPathsDivisor: 6, skipFeatures: true, mode: modeGeneral},
	DifficultyMedium: {width: 16, height: 12, extraPathsDivisor: 10, holes: 1, wildcard: true, mode: modeGeneral},
	DifficultyHard:   {width: 24, height: 16, extraPathsDivisor: 16, holes: 3, portals: true, wildcard: true, mode: modeGeneral},
	DifficultyHack1:  {width: 16, height: 12, extraPathsDivisor: 10, mode: modeHack1},
	DifficultyHack2:  {width: 16, height: 12, extraPathsDivisor: 10, mode: modeHack2},
}

// GenerateRequest asks for one accepted maze.
type GenerateRequest struct {
	OwnerID    uuid.UUID
	Difficulty string

	// MinShortestPath, when positive, rejects candidates whose solved
	// shortest path is below it and widens the retry budget.
	MinShortestPath int
}

// MazeService owns the generation accept/reject loop the core engine
// stays out of: it retries candidate layouts against the solver until the
// difficulty's thresholds hold, applies feature overlays and persists the
// accepted maze.
type MazeService struct {
	repo    i.MazeRepo
	logger  i.Logger
	newRand func() *rand.Rand
}

// MazeServiceConfig configures a MazeService. NewRand may be set to a
// seeded source factory for deterministic tests; when nil each generation
// call gets a clock-seeded source.
type MazeServiceConfig struct {
	Repo    i.MazeRepo
	Logger  i.Logger
	NewRand func() *rand.Rand
}

// NewMazeService creates a MazeService from the configuration.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil {
		return nil, errors.New("maze repository is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	newRand := cfg.NewRand
	if newRand == nil {
		newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	return &MazeService{
		repo:    cfg.Repo,
		logger:  cfg.Logger,
		newRand: newRand,
	}, nil
}

// Generate runs the bounded retry loop for the requested difficulty and
// returns the accepted, persisted maze record. ErrGenerationExhausted is
// returned when no candidate inside the budget satisfies the constraints.
func (s *MazeService) Generate(ctx context.Context, req GenerateRequest) (*dmn.MazeRecord, error) {
	prof, ok := profiles[req.Difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	rng := s.newRand()
	generator, err := maze.NewGenerator(maze.Config{
		Width:             prof.width,
		Height:            prof.height,
		ExtraPathsDivisor: prof.extraPathsDivisor,
		SkipFeatures:      prof.skipFeatures,
		Rand:              rng,
	})
	if err != nil {
		return nil, err
	}

	budget := defaultAttempts
	if req.MinShortestPath > 0 {
		budget = constrainedAttempts
	}

	for attempt := 0; attempt < budget; attempt++ {
		layout, err := s.generateLayout(generator, prof.mode)
		if err != nil {
			return nil, err
		}

		holes := maze.GenerateHoles(rng, layout.Grid, prof.holes, layout.Start, layout.Goal)
		stats := maze.Solve(layout.Grid, layout.Start, layout.Goal, holes)

		if !s.accept(prof.mode, stats, req.MinShortestPath, attempt, budget) {
			continue
		}

		record := &dmn.MazeRecord{
			ID:         uuid.New(),
			OwnerID:    req.OwnerID,
			Difficulty: req.Difficulty,
			Grid:       layout.Grid,
			Start:      layout.Start,
			Goal:       layout.Goal,
			Holes:      holes,
			Stats:      stats,
			CreatedAt:  time.Now().UTC(),
		}
		if prof.portals {
			record.Portals = maze.GeneratePortals(rng, layout.Grid, layout.Start, layout.Goal)
		}
		if prof.wildcard {
			record.Wildcard = maze.GenerateWildcard(rng, layout.Grid, layout.Start, layout.Goal, holes)
		}

		if err := s.repo.Save(ctx, record); err != nil {
			return nil, err
		}

		s.logger.Info(fmt.Sprintf("accepted %s maze %s after %d attempt(s): path=%d ratio=%.2f",
			req.Difficulty, record.ID, attempt+1, stats.ShortestPath, stats.Ratio))
		return record, nil
	}

	s.logger.Warning(fmt.Sprintf("generation exhausted for difficulty %s (minShortestPath=%d)",
		req.Difficulty, req.MinShortestPath))
	return nil, ErrGenerationExhausted
}

func (s *MazeService) generateLayout(generator *maze.Generator, mode generatorMode) (*maze.Layout, error) {
	switch mode {
	case modeHack1:
		return generator.GenerateHack()
	case modeHack2:
		return generator.GenerateHack2()
	default:
		return generator.Generate()
	}
}

// accept applies the per-mode rejection rules. An unreachable goal is
// always rejected. The general generator additionally enforces the ratio
// and minimum-length thresholds during the early half of the budget; the
// hack modes skip those since their corridor guarantees a trivial route.
func (s *MazeService) accept(mode generatorMode, stats maze.Stats, minShortestPath, attempt, budget int) bool {
	if stats.ShortestPath == -1 {
		return false
	}
	if minShortestPath > 0 && stats.ShortestPath < minShortestPath {
		return false
	}
	if mode == modeGeneral && attempt < budget/2 {
		if stats.Ratio < minAcceptRatio || stats.ShortestPath < minAcceptPath {
			return false
		}
	}
	return true
}

// ByID fetches a stored maze record.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}
