// Package web serves pong to browsers over a websocket. The server simulates;
// the page only paints frames and reports the pointer.
package web

import "github.com/tomz197/pong/internal/physics"

// Outgoing message types.
const (
	TypeFrame    = "frame"
	TypeShutdown = "shutdown"
)

// Incoming pointer message types.
const (
	PointerEnter = "enter"
	PointerLeave = "leave"
	PointerMove  = "move"
)

// Rect is a filled rectangle in arena units, top-left anchored.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Frame is one rendered picture of the arena.
type Frame struct {
	Type   string  `json:"type"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Rects  []Rect  `json:"rects"`
	Score  [2]int  `json:"score"`
}

// Notice is a non-frame message to the page.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// PointerMessage is what the page sends. Y is the pointer height as a
// fraction of the arena, 0 at the top.
type PointerMessage struct {
	Type string  `json:"type"`
	Y    float64 `json:"y"`
}

// frameRenderer collects a Frame. It satisfies game.Renderer.
type frameRenderer struct {
	frame Frame
}

func newFrameRenderer(width, height float64) *frameRenderer {
	return &frameRenderer{frame: Frame{Type: TypeFrame, Width: width, Height: height}}
}

func (r *frameRenderer) Clear() {
	r.frame.Rects = r.frame.Rects[:0]
}

func (r *frameRenderer) DrawRectangle(rect physics.Rect) {
	r.frame.Rects = append(r.frame.Rects, Rect{X: rect.Left(), Y: rect.Top(), W: rect.Width, H: rect.Height})
}

func (r *frameRenderer) DrawScore(left, right int) {
	r.frame.Score = [2]int{left, right}
}
