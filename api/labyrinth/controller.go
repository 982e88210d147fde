package labyrinthapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/labyrinth/domain"
	"github.com/beka-birhanu/labyrinth/service"
	"github.com/beka-birhanu/labyrinth/service/i"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 100
)

// LabyrinthController serves solve requests.
type LabyrinthController struct {
	labyrinthService i.LabyrinthService
	solveTimeout     time.Duration
}

// NewLabyrinthController initializes a LabyrinthController. A zero timeout means no limit.
func NewLabyrinthController(ls i.LabyrinthService, solveTimeout time.Duration) (*LabyrinthController, error) {
	if ls == nil {
		return nil, errors.New("labyrinth service is required")
	}
	return &LabyrinthController{
		labyrinthService: ls,
		solveTimeout:     solveTimeout,
	}, nil
}

// RegisterPublic registers public routes.
func (lc *LabyrinthController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (lc *LabyrinthController) RegisterProtected(route *gin.RouterGroup) {
	labyrinth := route.Group("/labyrinth")
	{
		labyrinth.POST("/solve", lc.solve)
		labyrinth.GET("/solve/:ID", lc.record)
		labyrinth.GET("/ranking", lc.ranking)
	}
}

// solve handles maze solve requests.
func (lc *LabyrinthController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveCtx := context.Context(ctx)
	if lc.solveTimeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, lc.solveTimeout)
		defer cancel()
	}

	record, err := lc.labyrinthService.SolveText(solveCtx, request.Maze)
	switch {
	case errors.Is(err, service.ErrInvalidMaze):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, solver.ErrSearchLimit), errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "maze is too large to solve"})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	ctx.JSON(http.StatusOK, toSolveResponse(record))
}

// record retrieves a stored solve.
func (lc *LabyrinthController) record(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := lc.labyrinthService.Record(ctx, ID)
	if errors.Is(err, service.ErrRepoNotEnabled) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such solve"})
		return
	}

	ctx.JSON(http.StatusOK, toSolveResponse(record))
}

// ranking lists the mazes needing the most turns.
func (lc *LabyrinthController) ranking(ctx *gin.Context) {
	limit := defaultRankingLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxRankingLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	ranked, err := lc.labyrinthService.Hardest(ctx, int64(limit))
	if errors.Is(err, service.ErrCacheNotEnabled) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading ranking"})
		return
	}

	response := RankingResponse{Mazes: make([]RankedMaze, 0, len(ranked))}
	for _, r := range ranked {
		response.Mazes = append(response.Mazes, RankedMaze{Digest: r.Digest, Turns: r.Turns})
	}
	ctx.JSON(http.StatusOK, response)
}

func toSolveResponse(record *dmn.SolveRecord) *SolveResponse {
	return &SolveResponse{
		ID:     record.ID.String(),
		Digest: record.Digest,
		Width:  record.Width,
		Height: record.Height,
		Found:  record.Found,
		Turns:  record.Turns,
		Nodes:  record.Nodes,
		Cached: record.Cached,
	}
}
