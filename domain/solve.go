// Package domain holds the records exchanged between the service, its stores, and the API.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of searching one maze.
type Result struct {
	Turns int  `redis:"turns"` // Least number of turns, meaningful only when Found
	Found bool `redis:"found"` // Found reports whether the exit is reachable
	Nodes int  `redis:"nodes"` // Search calls spent finding the result
}

// SolveRecord is a persisted solve request and its outcome.
type SolveRecord struct {
	ID         uuid.UUID `bson:"_id" json:"id"`
	Digest     string    `bson:"digest" json:"digest"`
	Width      int       `bson:"width" json:"width"`
	Height     int       `bson:"height" json:"height"`
	Turns      int       `bson:"turns" json:"turns"`
	Found      bool      `bson:"found" json:"found"`
	Nodes      int       `bson:"nodes" json:"nodes"`
	Cached     bool      `bson:"cached" json:"cached"`
	DurationMS int64     `bson:"durationMs" json:"duration_ms"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}

// Result returns the outcome part of the record.
func (r *SolveRecord) Result() Result {
	return Result{Turns: r.Turns, Found: r.Found, Nodes: r.Nodes}
}

// RankedMaze is an entry of the ranking of solved mazes by turn count.
type RankedMaze struct {
	Digest string `json:"digest"`
	Turns  int    `json:"turns"`
}
