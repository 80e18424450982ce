// Package server tracks the sessions connected to one process. Every session
// owns its own game; the hub only knows who is online, their scores and when
// to tell everyone the process is going away.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomz197/pong/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the session hub.
// Decouples the Client from the concrete Server implementation, enabling
// testing with a fake hub.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID int, player, opponent int) bool
	GetSnapshot() *Snapshot
}

// Server manages the set of connected sessions.
type Server struct {
	snapshot     atomic.Pointer[Snapshot]
	clients      map[int]*ClientHandle
	nextClientID int
	scoreCh      chan ClientScore
	registerCh   chan *ClientHandle
	unregisterCh chan int
	mu           sync.RWMutex
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	Player   int              // Points scored by the person at the keyboard
	Opponent int              // Points scored by the AI
	EventsCh chan ClientEvent // Events sent to client (shutdown)
}

// ClientScore is a score update reported by a session.
type ClientScore struct {
	ClientID int
	Player   int
	Opponent int
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates a new session hub.
func NewServer() *Server {
	s := &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scoreCh:      make(chan ClientScore, 256),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
	}
	s.snapshot.Store(&Snapshot{})
	return s
}

// Run starts the hub loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(config.ServerTickTime)
	defer ticker.Stop()

	for {
		s.processRegistrations()
		s.collectScores()
		s.createSnapshot()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the server context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// Players returns the number of registered sessions.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// ReportScore records the latest score of a session. It returns false when the
// hub is backed up and the update was dropped; callers report again later.
func (s *Server) ReportScore(clientID int, player, opponent int) bool {
	select {
	case s.scoreCh <- ClientScore{ClientID: clientID, Player: player, Opponent: opponent}:
		return true
	default:
		return false
	}
}

// GetSnapshot returns the current hub snapshot.
func (s *Server) GetSnapshot() *Snapshot {
	return s.snapshot.Load()
}

// processRegistrations handles pending client registrations/unregistrations.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// collectScores applies all pending score reports.
func (s *Server) collectScores() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		select {
		case cs := <-s.scoreCh:
			if handle, ok := s.clients[cs.ClientID]; ok {
				handle.Player = cs.Player
				handle.Opponent = cs.Opponent
			}
		default:
			return
		}
	}
}

// createSnapshot publishes an immutable view of the connected sessions.
func (s *Server) createSnapshot() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.snapshot.Store(&Snapshot{
		Players:   len(s.clients),
		TopScores: topScores(s.clients, config.LeaderboardSize),
	})
}
