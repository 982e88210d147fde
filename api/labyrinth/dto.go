// Package labyrinthapi exposes the maze solver over HTTP.
package labyrinthapi

// SolveRequest carries a maze in its text format.
type SolveRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// SolveResponse describes the outcome of a solve.
type SolveResponse struct {
	ID     string `json:"id"`
	Digest string `json:"digest"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Found  bool   `json:"found"`
	Turns  int    `json:"turns"`
	Nodes  int    `json:"nodes"`
	Cached bool   `json:"cached"`
}

// RankingResponse lists the hardest solved mazes.
type RankingResponse struct {
	Mazes []RankedMaze `json:"mazes"`
}

// RankedMaze is one entry of RankingResponse.
type RankedMaze struct {
	Digest string `json:"digest"`
	Turns  int    `json:"turns"`
}
