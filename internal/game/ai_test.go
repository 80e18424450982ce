package game

import (
	"testing"

	"github.com/tomz197/pong/internal/physics"
)

func TestAIChasesApproachingBall(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 50}
	g.Ball.Velocity = physics.Vector{X: 400, Y: 0}

	g.steerAI(0.01)

	if got := g.Paddles[Right].Center.Y; !near(got, 244) {
		t.Errorf("right paddle y = %v, want 244", got)
	}
	// The left paddle sees the ball receding and is already centered.
	if got := g.Paddles[Left].Center.Y; got != 250 {
		t.Errorf("left paddle y = %v, want 250", got)
	}
}

func TestAIChasesDownwards(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 450}
	g.Ball.Velocity = physics.Vector{X: -400, Y: 0}

	g.steerAI(0.01)

	if got := g.Paddles[Left].Center.Y; !near(got, 256) {
		t.Errorf("left paddle y = %v, want 256", got)
	}
}

func TestAIHoldsWhenBallWithinSpan(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 300}
	g.Ball.Velocity = physics.Vector{X: 400, Y: 0}

	g.steerAI(0.01)

	if got := g.Paddles[Right].Center.Y; got != 250 {
		t.Errorf("right paddle moved to %v", got)
	}
}

func TestAIDriftsToCenterWhenBallRecedes(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 250}
	g.Ball.Velocity = physics.Vector{X: -400, Y: 0}

	g.Paddles[Right].Center.Y = 100
	g.steerAI(0.01)
	if got := g.Paddles[Right].Center.Y; !near(got, 106) {
		t.Errorf("paddle below-center drift: y = %v, want 106", got)
	}

	g.Paddles[Right].Center.Y = 400
	g.steerAI(0.01)
	if got := g.Paddles[Right].Center.Y; !near(got, 394) {
		t.Errorf("paddle above-center drift: y = %v, want 394", got)
	}
}

func TestAIDriftStopsWithinOneStep(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 250}
	g.Ball.Velocity = physics.Vector{X: -400, Y: 0}
	g.Paddles[Right].Center.Y = 253

	g.steerAI(0.01)

	if got := g.Paddles[Right].Center.Y; got != 253 {
		t.Errorf("paddle within one step of center moved to %v", got)
	}
}

func TestAIDriftsWhenJustOutsideOneStep(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 250}
	g.Ball.Velocity = physics.Vector{X: -400, Y: 0}
	g.Paddles[Right].Center.Y = 257

	g.steerAI(0.01)

	if got := g.Paddles[Right].Center.Y; !near(got, 251) {
		t.Errorf("paddle y = %v, want 251", got)
	}
}

func TestAIIgnoresExternallyControlledPaddle(t *testing.T) {
	g := New()
	g.PointerEnter()
	g.Ball.Center = physics.Vector{X: 400, Y: 20}
	g.Ball.Velocity = physics.Vector{X: -400, Y: 0}

	for i := 0; i < 100; i++ {
		g.Update(0.001)
	}

	if got := g.Paddles[Left].Center.Y; got != 250 {
		t.Errorf("externally controlled paddle moved to %v", got)
	}
}

func TestAIWithStationaryBallTreatsItAsApproaching(t *testing.T) {
	g := New()
	g.Ball.Center = physics.Vector{X: 400, Y: 20}
	g.Ball.Velocity = physics.Vector{}

	g.steerAI(0.01)

	for i, p := range g.Paddles {
		if !near(p.Center.Y, 244) {
			t.Errorf("paddle %d y = %v, want 244", i, p.Center.Y)
		}
	}
}
