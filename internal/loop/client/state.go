package client

import (
	"time"

	"github.com/tomz197/pong/internal/input"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen over an AI-vs-AI rally
	GameStatePlaying                   // Pointer can take the left paddle
	GameStateShutdown                  // Server is shutting down
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// ClientState holds per-session UI state. The simulation itself lives in game.Game.
type ClientState struct {
	Input         input.Input
	GameState     GameState     // This client's game phase
	Running       bool          // Client loop running
	Paused        bool          // A match was started and left with Esc
	delta         time.Duration // Frame delta time (client-side)
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Previous frame state, used to clear the terminal on transitions
	prevGameState GameState
	wasInactive   bool
	reportedScore [2]int
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		Running:       true,
		prevGameState: -1,
	}
}
