package evalapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/mazegen-api/api/identity"
	"github.com/beka-birhanu/mazegen-api/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardSize = 10

// EvalController manages evaluation run submission and the leaderboard.
type EvalController struct {
	evalService *service.EvalService
}

// NewEvalController initializes an EvalController.
func NewEvalController(es *service.EvalService) (*EvalController, error) {
	if es == nil {
		return nil, errors.New("eval service is required")
	}
	return &EvalController{evalService: es}, nil
}

// RegisterPublic registers public routes.
func (ec *EvalController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", ec.leaderboard)
}

// RegisterProtected registers protected routes.
func (ec *EvalController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes/:ID/runs", ec.submitRun)
	route.GET("/mazes/:ID/runs", ec.listRuns)
}

// submitRun records an agent run against a stored maze.
func (ec *EvalController) submitRun(ctx *gin.Context) {
	mazeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	var request RunRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	run, err := ec.evalService.RecordRun(ctx, userID, mazeID, request.Model, request.Moves, request.Solved)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &RunResponse{Run: run})
}

// listRuns returns the runs recorded against a maze.
func (ec *EvalController) listRuns(ctx *gin.Context) {
	mazeID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	runs, err := ec.evalService.RunsByMaze(ctx, mazeID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading runs"})
		return
	}

	ctx.JSON(http.StatusOK, &RunListResponse{Runs: runs})
}

// leaderboard returns the top-scoring models.
func (ec *EvalController) leaderboard(ctx *gin.Context) {
	size := int64(defaultLeaderboardSize)
	if raw := ctx.Query("size"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
			return
		}
		size = parsed
	}

	entries, err := ec.evalService.Leaderboard(ctx, size)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		response = append(response, LeaderboardEntry{Model: entry.Member, Score: entry.Score})
	}
	ctx.JSON(http.StatusOK, response)
}
