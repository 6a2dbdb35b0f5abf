// FILE: internal/client/game/state.go
package game

import (
	"slices"

	"quiz/internal/core"
)

type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon           // every quiz in the pool answered correctly
	PhaseLost          // a wrong answer ended the game
	PhaseAborted       // a quiz in the pool could not be loaded
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// State is the value threaded through one game. Transitions return a new
// State and never modify the receiver.
type State struct {
	Phase Phase
	Pool  []core.ID // ids not asked yet
	Score int
}

// NewState starts a game over a snapshot of ids
func NewState(ids []core.ID) State {
	return State{Phase: PhaseRunning, Pool: slices.Clone(ids)}
}

// Terminal reports whether the game is over
func (s State) Terminal() bool {
	return s.Phase != PhaseRunning
}

// Draw removes one id from the pool. pick receives the pool size and returns
// the index to take. With an empty pool the game is won and ok is false.
func (s State) Draw(pick func(n int) int) (id core.ID, next State, ok bool) {
	if s.Terminal() {
		return 0, s, false
	}
	if len(s.Pool) == 0 {
		s.Phase = PhaseWon
		return 0, s, false
	}

	i := pick(len(s.Pool))
	id = s.Pool[i]
	s.Pool = slices.Delete(slices.Clone(s.Pool), i, i+1)
	return id, s, true
}

// Answer scores the last drawn question
func (s State) Answer(correct bool) State {
	if s.Terminal() {
		return s
	}
	if correct {
		s.Score++
		return s
	}
	s.Phase = PhaseLost
	return s
}

// Abort ends the game after a quiz could not be resolved
func (s State) Abort() State {
	if s.Terminal() {
		return s
	}
	s.Phase = PhaseAborted
	return s
}
