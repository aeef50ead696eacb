package history

import (
	"maps"
	"slices"
	"time"

	"github.com/kiliankoe/wingscore/internal/game"
)

// dateFormat matches what browsers produce for Date.toISOString.
const dateFormat = "2006-01-02T15:04:05.000Z07:00"

// NewRecord snapshots a finished game. Every player sharing the top total
// is flagged as a winner.
func NewRecord(st game.GameState, now time.Time) GameRecord {
	winners := game.Winners(st.Players)

	rec := GameRecord{
		ID:      st.GameID,
		Date:    now.UTC().Format(dateFormat),
		Players: make([]PlayerResult, 0, len(st.Players)),
	}
	if st.StartPlayerID != nil {
		if p, ok := st.Player(*st.StartPlayerID); ok {
			rec.StartPlayerName = p.Name
		}
	}
	for _, p := range st.Players {
		rec.Players = append(rec.Players, PlayerResult{
			Name:   p.Name,
			Total:  p.Total,
			Scores: maps.Clone(p.Scores),
			Winner: slices.Contains(winners, p.ID),
			Color:  p.Color,
		})
	}
	return rec
}
