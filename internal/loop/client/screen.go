package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
	"github.com/tomz197/pong/internal/object"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.game.Draw(c.renderer)

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	if err := c.drawScores(); err != nil {
		return err
	}

	snapshot := c.server.GetSnapshot()
	c.drawUI(now, snapshot)

	return c.chunkWriter.Flush()
}

// drawScores writes the score overlay and marks its cells for repaint.
func (c *Client) drawScores() error {
	for _, l := range c.renderer.ScoreLabels() {
		c.canvas.MarkTextDirty(l.Col, l.Row, len(l.Value))
		t := object.Text{
			Col:   l.Col + c.canvas.OffsetCol(),
			Row:   l.Row + c.canvas.OffsetRow(),
			Value: l.Value,
		}
		if err := t.Draw(c.chunkWriter); err != nil {
			return err
		}
	}
	return nil
}

// drawUI draws the state-dependent overlay.
func (c *Client) drawUI(now time.Time, snapshot *server.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawPanel(centerX, centerY, c.shutdownPanel())
		return
	}

	if c.state.isInactive {
		c.drawPanel(centerX, centerY, c.inactivityPanel(now))
		return
	}

	switch c.state.GameState {
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snapshot)
	case GameStateStart:
		c.drawPanel(centerX, centerY, c.startPanel(now, snapshot))
	}
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
	titleArt = []string{
		` ___  ___  _  _  ___ `,
		`| _ \/ _ \| \| |/ __|`,
		`|  _/ (_) | .' | (_ |`,
		`|_|  \___/|_|\_|\___|`,
	}
)

// drawPanel writes a multi-line panel centred on (centerX, centerY) and marks
// its cells so the canvas repaints them once the panel is gone.
func (c *Client) drawPanel(centerX, centerY int, panel string) {
	lines := strings.Split(panel, "\n")
	top := max(centerY-len(lines)/2, 1)
	for i, line := range lines {
		width := lipgloss.Width(line)
		col := max(centerX-width/2, 1)
		c.chunkWriter.WriteAt(col, top+i, line)
		c.canvas.MarkTextDirty(col, top+i, width)
	}
}

// startPanel renders the title screen.
func (c *Client) startPanel(now time.Time, snapshot *server.Snapshot) string {
	var b strings.Builder
	b.WriteString(strings.Join(titleArt, "\n"))
	b.WriteString("\n\n~ Pong in your terminal ~\n\n")

	controls := []string{
		"Mouse  . . . .  Paddle",
		"SPACE  . . . . .  Play",
		"ESC  . . . . . . Pause",
		"Q  . . . . . . .  Quit",
	}
	b.WriteString(strings.Join(controls, "\n"))

	if len(snapshot.TopScores) > 0 {
		b.WriteString("\n\nBest rallies online\n")
		for i, e := range snapshot.TopScores {
			fmt.Fprintf(&b, "\n%d. %-12s %3d : %-3d", i+1, truncate(e.Username, 12), e.Score, e.Opponent)
		}
	}

	prompt := ">>  Press SPACE to Start  <<"
	if c.state.Paused {
		prompt = ">>  Press SPACE to Resume <<"
	}
	// Blank the prompt instead of dropping it so the panel keeps its size.
	if now.UnixMilli()/600%2 != 0 {
		prompt = strings.Repeat(" ", len(prompt))
	}
	fmt.Fprintf(&b, "\n\n%s\n\nPlayers online: %d", prompt, snapshot.Players)

	return panelStyle.Render(b.String())
}

// inactivityPanel renders the inactivity warning.
func (c *Client) inactivityPanel(now time.Time) string {
	left := int(config.InactivityDisconnectUser - now.Sub(c.lastInput).Seconds())
	return panelStyle.Render(fmt.Sprintf(
		"INACTIVITY WARNING\n\nYou will be disconnected in %d seconds.\n\nPress any key to continue",
		max(left, 0),
	))
}

// shutdownPanel renders the server shutdown notification.
func (c *Client) shutdownPanel() string {
	remaining := int(c.state.shutdownTimer) + 1
	return panelStyle.Render(fmt.Sprintf(
		"SERVER SHUTTING DOWN\n\nThe server is restarting for maintenance.\nPlease reconnect in a moment.\n\nDisconnecting in %d seconds...\n\nPress Q to disconnect now",
		remaining,
	))
}

// drawPlayingHUD draws the in-game hints.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we no longer clear every frame).
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snapshot *server.Snapshot) {
	cw := c.chunkWriter

	hint := "ESC pause  Q quit"
	if c.game.Paddles[0].IsAIControlled() {
		hint = "Move the mouse over the arena to take the left paddle"
	}
	hint = fmt.Sprintf("%-54s", hint)
	if len(hint) <= termWidth-2 {
		cw.WriteAt(2, termHeight, hint)
		c.canvas.MarkTextDirty(2, termHeight, len(hint))
	}

	players := fmt.Sprintf("Players: %-4d", snapshot.Players)
	if col := termWidth - len(players) - 1; col > len(hint)+2 {
		cw.WriteAt(col, termHeight, players)
		c.canvas.MarkTextDirty(col, termHeight, len(players))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
