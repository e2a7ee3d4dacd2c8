// Package mazeapi exposes maze generation and retrieval over HTTP.
package mazeapi

import (
	dmn "github.com/beka-birhanu/mazegen-api/domain"
)

// GenerateRequest asks for a new maze of the given difficulty. A positive
// MinShortestPath rejects candidates with a shorter solution; the server
// answers 422 when no candidate satisfies it within the retry budget.
type GenerateRequest struct {
	Difficulty      string `json:"difficulty" binding:"required"`
	MinShortestPath int    `json:"min_shortest_path"`
}

// MazeResponse wraps a stored maze record.
type MazeResponse struct {
	Maze *dmn.MazeRecord `json:"maze"`
}
