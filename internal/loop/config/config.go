// Package config centralizes all fixed game parameters.
package config

import "time"

// Arena dimensions in logical units. Everything in the simulation is expressed in these.
const (
	ArenaWidth  = 800
	ArenaHeight = 500
)

// Ball
const (
	BallSize   = 30
	ServeSpeed = 400  // Horizontal serve velocity, always rightwards
	BounceGain = 1.02 // Horizontal speed multiplier per paddle hit
)

// Paddles
const (
	PaddleWidth         = 35
	PaddleHeight        = 125
	PaddleMaxDeflection = 200 // Vertical velocity scale for off-center hits, not an angle
	PaddleInset         = 50  // Distance of the paddle center from its arena edge
	AIDifficulty        = 600 // AI paddle speed in units per second
)

// Physics stepping.
//
// 6000 Hz gives ~100 physics steps per rendered frame at 60 FPS.
// Tune with PONG_PHYSICS_HZ.
const (
	PhysicsRate   = 6000
	MaxFrameDelta = 250 * time.Millisecond // Clamp after stalls so a paused process does not replay minutes of physics
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Session hub
const (
	ServerTickRate  = 10 // Hub snapshot rebuilds per second
	ServerTickTime  = time.Second / ServerTickRate
	LeaderboardSize = 5
)

// Terminal render area is clamped to this size and centered beyond it.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
