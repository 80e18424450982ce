package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/loop/server"
)

const writeTimeout = 2 * time.Second

var errClientGone = errors.New("client gone")

// Options configures a Handler.
type Options struct {
	Logger      *log.Logger
	PhysicsRate float64 // Steps per second; config.PhysicsRate when zero
	FPS         int     // Frames per second; config.ClientTargetFPS when zero
}

// Handler upgrades each request to a websocket and runs one game per visitor.
type Handler struct {
	upgrader websocket.Upgrader
	hub      server.GameServer
	logger   *log.Logger
	rate     float64
	fps      int
}

// NewHandler creates a handler registering every visitor with hub.
func NewHandler(hub server.GameServer, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := opts.PhysicsRate
	if rate <= 0 {
		rate = config.PhysicsRate
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.ClientTargetFPS
	}
	return &Handler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		hub:    hub,
		logger: logger,
		rate:   rate,
		fps:    fps,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	handle := h.hub.RegisterClient(r.RemoteAddr)
	defer h.hub.UnregisterClient(handle.ID)

	logger := h.logger.With("client", handle.ID, "remote", r.RemoteAddr)
	logger.Info("web session started")

	s := newSession(conn, h.hub, handle, h.rate, logger)
	if err := s.run(r.Context(), h.fps); err != nil {
		logger.Warn("web session failed", "err", err)
	}
	logger.Info("web session ended")
}

// session is one visitor's game. Only run's goroutine touches the game and
// writes to the socket; the reader goroutine hands pointer messages over.
type session struct {
	conn     *websocket.Conn
	hub      server.GameServer
	handle   *server.ClientHandle
	game     *game.Game
	loop     *loop.Loop
	renderer *frameRenderer
	pointer  chan PointerMessage
	gone     chan struct{} // Closed when the reader stops
	stop     chan struct{} // Closed when run returns
	logger   *log.Logger

	reportedScore [2]int // Last score the hub accepted
}

func newSession(conn *websocket.Conn, hub server.GameServer, handle *server.ClientHandle, rate float64, logger *log.Logger) *session {
	s := &session{
		conn:     conn,
		hub:      hub,
		handle:   handle,
		loop:     loop.New(rate, config.MaxFrameDelta),
		renderer: newFrameRenderer(config.ArenaWidth, config.ArenaHeight),
		pointer:  make(chan PointerMessage, 256),
		gone:     make(chan struct{}),
		stop:     make(chan struct{}),
		logger:   logger,
	}
	s.game = game.New(game.WithEventHandler(s.handleGameEvent))
	return s
}

func (s *session) run(ctx context.Context, fps int) error {
	defer close(s.stop)
	go s.readPointer()

	err := loop.Run(ctx, fps, s.frame)
	if errors.Is(err, errClientGone) || ctx.Err() != nil {
		return nil
	}
	return err
}

// readPointer decodes pointer messages until the socket fails. Undecodable
// messages are skipped.
func (s *session) readPointer() {
	defer close(s.gone)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg PointerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("ignoring malformed message", "err", err)
			continue
		}
		select {
		case s.pointer <- msg:
		case <-s.stop:
			return
		}
	}
}

// isCloseOrNetError reports whether a write error means the visitor is gone.
func isCloseOrNetError(err error) bool {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, websocket.ErrCloseSent) || errors.Is(err, net.ErrClosed)
}

func (s *session) frame(now time.Time) error {
drain:
	for {
		select {
		case msg := <-s.pointer:
			s.applyPointer(msg)
		case <-s.gone:
			return errClientGone
		case ev, ok := <-s.handle.EventsCh:
			if !ok || ev.Type == server.EventServerShutdown {
				s.write(Notice{Type: TypeShutdown, Message: "The server is restarting. Please reload in a moment."})
				return errClientGone
			}
		default:
			break drain
		}
	}

	s.loop.Advance(now, s.game.Update)
	s.reportScore()
	s.game.Draw(s.renderer)
	return s.write(s.renderer.frame)
}

func (s *session) applyPointer(msg PointerMessage) {
	switch msg.Type {
	case PointerEnter:
		s.game.PointerEnter()
	case PointerLeave:
		s.game.PointerLeave()
	case PointerMove:
		if err := s.game.PointerMove(msg.Y); err != nil {
			s.logger.Debug("pointer input rejected", "err", err)
		}
	default:
		s.logger.Debug("unknown pointer message", "type", msg.Type)
	}
}

func (s *session) write(v any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := s.conn.WriteJSON(v); err != nil {
		if isCloseOrNetError(err) {
			return errClientGone
		}
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (s *session) handleGameEvent(ev game.Event) {
	if ev.Type == game.EventScore {
		s.reportScore()
	}
}

// reportScore sends the score once per change, retrying on later frames while
// the hub drops updates.
func (s *session) reportScore() {
	left, right := s.game.Scores()
	if s.reportedScore == [2]int{left, right} {
		return
	}
	if s.hub.ReportScore(s.handle.ID, left, right) {
		s.reportedScore = [2]int{left, right}
	}
}
