// Package evalapi exposes agent evaluation runs and the scoreboard over
// HTTP.
package evalapi

import (
	dmn "github.com/beka-birhanu/mazegen-api/domain"
)

// RunRequest reports one solving-agent attempt against a maze.
type RunRequest struct {
	Model  string `json:"model" binding:"required"`
	Moves  int    `json:"moves" binding:"required"`
	Solved bool   `json:"solved"`
}

// RunResponse wraps a recorded run.
type RunResponse struct {
	Run *dmn.EvalRun `json:"run"`
}

// RunListResponse wraps the runs recorded against one maze.
type RunListResponse struct {
	Runs []*dmn.EvalRun `json:"runs"`
}

// LeaderboardEntry is one scoreboard row.
type LeaderboardEntry struct {
	Model string  `json:"model"`
	Score float64 `json:"score"`
}
