package web

import (
	"context"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tomz197/pong/internal/loop/server"
	"github.com/tomz197/pong/internal/physics"
)

func startHandler(t *testing.T) (*server.Server, *websocket.Conn) {
	t.Helper()
	hub := server.NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	ts := httptest.NewServer(NewHandler(hub, Options{PhysicsRate: 600, FPS: 100}))
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket server: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return hub, conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStreamsFrames(t *testing.T) {
	hub, conn := startHandler(t)

	f := readFrame(t, conn)
	if f.Type != TypeFrame || f.Width != 800 || f.Height != 500 {
		t.Fatalf("frame header = %+v", f)
	}
	if len(f.Rects) != 3 {
		t.Fatalf("rects = %d, want ball and two paddles", len(f.Rects))
	}
	if paddle := f.Rects[1]; paddle.W != 35 || paddle.H != 125 {
		t.Errorf("left paddle = %+v", paddle)
	}
	waitFor(t, func() bool { return hub.Players() == 1 })
}

func TestPointerSteersLeftPaddle(t *testing.T) {
	_, conn := startHandler(t)
	readFrame(t, conn)

	for _, msg := range []PointerMessage{{Type: PointerEnter}, {Type: PointerMove, Y: 0.1}} {
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatal(err)
		}
	}

	// Paddle centre at 50 puts its top edge at 50 - 62.5.
	for i := 0; i < 100; i++ {
		f := readFrame(t, conn)
		if math.Abs(f.Rects[1].Y-(-12.5)) < 1e-9 {
			return
		}
	}
	t.Fatal("left paddle never followed the pointer")
}

func TestMalformedMessageIsIgnored(t *testing.T) {
	_, conn := startHandler(t)
	readFrame(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	// The session keeps streaming.
	for i := 0; i < 3; i++ {
		readFrame(t, conn)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	hub, conn := startHandler(t)
	readFrame(t, conn)
	waitFor(t, func() bool { return hub.Players() == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Players() == 0 })
}

func TestServerShutdownNotifiesPage(t *testing.T) {
	hub, conn := startHandler(t)
	readFrame(t, conn)
	waitFor(t, func() bool { return hub.Players() == 1 })

	go hub.Shutdown(3 * time.Second)

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("connection closed without a shutdown notice: %v", err)
		}
		if msg["type"] == TypeShutdown {
			break
		}
	}
	waitFor(t, func() bool { return hub.Players() == 0 })
}

func TestFrameRenderer(t *testing.T) {
	r := newFrameRenderer(800, 500)
	rect := physics.NewRect(30, 30)
	rect.Center = physics.Vector{X: 400, Y: 250}

	r.Clear()
	r.DrawScore(2, 5)
	r.DrawRectangle(rect)

	want := Rect{X: 385, Y: 235, W: 30, H: 30}
	if len(r.frame.Rects) != 1 || r.frame.Rects[0] != want {
		t.Errorf("rects = %+v", r.frame.Rects)
	}
	if r.frame.Score != [2]int{2, 5} {
		t.Errorf("score = %v", r.frame.Score)
	}

	r.Clear()
	if len(r.frame.Rects) != 0 {
		t.Error("Clear kept rects")
	}
}
