package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/beka-birhanu/mazegen-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *fakeMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, errors.New("maze not found")
	}
	return record, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newTestMazeService(t *testing.T, repo i.MazeRepo, seed int64) *MazeService {
	t.Helper()
	svc, err := NewMazeService(MazeServiceConfig{
		Repo:   repo,
		Logger: nopLogger{},
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		},
	})
	require.NoError(t, err)
	return svc
}

func TestMazeServiceGenerate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("every difficulty produces an accepted, persisted maze", func(t *testing.T) {
		for _, difficulty := range []string{
			DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyHack1, DifficultyHack2,
		} {
			repo := newFakeMazeRepo()
			svc := newTestMazeService(t, repo, 42)

			record, err := svc.Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: difficulty})
			require.NoError(t, err, difficulty)

			prof := profiles[difficulty]
			assert.Equal(t, difficulty, record.Difficulty)
			assert.Equal(t, owner, record.OwnerID)
			assert.Equal(t, prof.width, record.Grid.Width)
			assert.Equal(t, prof.height, record.Grid.Height)
			assert.GreaterOrEqual(t, record.Stats.ShortestPath, 1, difficulty)
			assert.LessOrEqual(t, len(record.Holes), prof.holes, difficulty)
			assert.Contains(t, repo.records, record.ID, difficulty)
		}
	})

	t.Run("hard profile carries portals on distinct sides and a wildcard", func(t *testing.T) {
		svc := newTestMazeService(t, newFakeMazeRepo(), 7)

		record, err := svc.Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: DifficultyHard})
		require.NoError(t, err)

		require.NotNil(t, record.Portals)
		assert.NotEqual(t, record.Portals.A.Side, record.Portals.B.Side)
		assert.NotNil(t, record.Wildcard)
	})

	t.Run("easy profile skips feature overlays", func(t *testing.T) {
		svc := newTestMazeService(t, newFakeMazeRepo(), 7)

		record, err := svc.Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: DifficultyEasy})
		require.NoError(t, err)

		assert.Empty(t, record.Holes)
		assert.Nil(t, record.Portals)
		assert.Nil(t, record.Wildcard)
	})

	t.Run("minimum shortest path constraint is honored", func(t *testing.T) {
		svc := newTestMazeService(t, newFakeMazeRepo(), 13)

		record, err := svc.Generate(ctx, GenerateRequest{
			OwnerID:         owner,
			Difficulty:      DifficultyMedium,
			MinShortestPath: 15,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, record.Stats.ShortestPath, 15)
	})

	t.Run("unsatisfiable constraint exhausts the retry budget", func(t *testing.T) {
		svc := newTestMazeService(t, newFakeMazeRepo(), 13)

		_, err := svc.Generate(ctx, GenerateRequest{
			OwnerID:         owner,
			Difficulty:      DifficultyEasy,
			MinShortestPath: 500, // longer than any path on a 10x8 grid
		})
		assert.ErrorIs(t, err, ErrGenerationExhausted)
	})

	t.Run("unknown difficulty is rejected", func(t *testing.T) {
		svc := newTestMazeService(t, newFakeMazeRepo(), 1)

		_, err := svc.Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: "nightmare"})
		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		repo := newFakeMazeRepo()
		repo.saveErr = errors.New("mongo down")
		svc := newTestMazeService(t, repo, 1)

		_, err := svc.Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: DifficultyEasy})
		assert.ErrorContains(t, err, "mongo down")
	})

	t.Run("same seed reproduces the same maze", func(t *testing.T) {
		first, err := newTestMazeService(t, newFakeMazeRepo(), 99).
			Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: DifficultyMedium})
		require.NoError(t, err)
		second, err := newTestMazeService(t, newFakeMazeRepo(), 99).
			Generate(ctx, GenerateRequest{OwnerID: owner, Difficulty: DifficultyMedium})
		require.NoError(t, err)

		assert.Equal(t, first.Grid.Cells, second.Grid.Cells)
		assert.Equal(t, first.Start, second.Start)
		assert.Equal(t, first.Goal, second.Goal)
		assert.Equal(t, first.Stats, second.Stats)
	})
}

func TestMazeServiceByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMazeRepo()
	svc := newTestMazeService(t, repo, 1)

	record, err := svc.Generate(ctx, GenerateRequest{OwnerID: uuid.New(), Difficulty: DifficultyEasy})
	require.NoError(t, err)

	fetched, err := svc.ByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)

	_, err = svc.ByID(ctx, uuid.New())
	assert.Error(t, err)
}
