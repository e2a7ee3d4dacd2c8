package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EvalRepo persists agent evaluation runs.
type EvalRepo struct {
	collection *mongo.Collection
}

// NewEvalRepo creates a new EvalRepo on the given client and names.
func NewEvalRepo(client *mongo.Client, dbName, collectionName string) *EvalRepo {
	return &EvalRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save stores an evaluation run.
func (e *EvalRepo) Save(ctx context.Context, run *dmn.EvalRun) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, err := e.collection.InsertOne(ctx, run)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByMaze lists the runs recorded against a maze, newest first.
func (e *EvalRepo) ByMaze(ctx context.Context, mazeID uuid.UUID) ([]*dmn.EvalRun, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := e.collection.Find(ctx, bson.M{"mazeId": mazeID}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var runs []*dmn.EvalRun
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return runs, nil
}
