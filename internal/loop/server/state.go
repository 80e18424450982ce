package server

import "sort"

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	Opponent int
	clientID int // Used for deterministic tie-break when scores are equal
}

// Snapshot is an immutable view of the hub for rendering.
type Snapshot struct {
	Players   int
	TopScores []TopScoreEntry // Best connected sessions for leaderboard display
}

// topScores returns up to n connected sessions ordered by player score,
// highest first. Sessions that have not scored are left out.
func topScores(clients map[int]*ClientHandle, n int) []TopScoreEntry {
	entries := make([]TopScoreEntry, 0, len(clients))
	for _, h := range clients {
		if h.Player <= 0 {
			continue
		}
		entries = append(entries, TopScoreEntry{
			Username: h.Username,
			Score:    h.Player,
			Opponent: h.Opponent,
			clientID: h.ID,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
