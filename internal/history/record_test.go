package history

import (
	"testing"
	"time"

	"github.com/kiliankoe/wingscore/internal/game"
	"github.com/rs/zerolog"
)

func TestNewRecordFromFinishedGame(t *testing.T) {
	s := game.NewStore(zerolog.Nop())
	a := s.AddPlayer("Alice", "red")
	b := s.AddPlayer("Bob", "blue")
	c := s.AddPlayer("Carol", "green")
	s.SetStartPlayer(b)
	s.UpdateRoundPlacement(a, 0, 1)
	s.UpdateRoundPlacement(b, 0, 1)
	s.UpdateRoundPlacement(c, 0, 2)
	s.UpdateScore(c, game.CategoryBirds, 1)
	st := s.Snapshot()

	now := time.Date(2026, 10, 18, 21, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	r := NewRecord(st, now)

	if r.ID != st.GameID {
		t.Fatalf("expected id %s, got %s", st.GameID, r.ID)
	}
	if r.StartPlayerName != "Bob" {
		t.Fatalf("expected start player Bob, got %q", r.StartPlayerName)
	}
	if r.Date != "2026-10-18T19:30:00.000Z" {
		t.Fatalf("expected UTC ISO-8601 date, got %q", r.Date)
	}
	if at, ok := r.PlayedAt(); !ok || !at.Equal(now) {
		t.Fatalf("expected date equal to now, got %v", at)
	}
	if len(r.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(r.Players))
	}
	if !r.Players[0].Winner || !r.Players[1].Winner || r.Players[2].Winner {
		t.Fatalf("expected Alice and Bob tied as winners, got %+v", r.Players)
	}
	if r.Players[0].Scores[game.CategoryRoundGoals] != 2 || r.Players[0].Total != 2 {
		t.Fatalf("unexpected Alice result %+v", r.Players[0])
	}
}

func TestNewRecordWithoutStartPlayer(t *testing.T) {
	s := game.NewStore(zerolog.Nop())
	s.AddPlayer("Solo", "red")
	r := NewRecord(s.Snapshot(), time.Now())
	if r.StartPlayerName != "" {
		t.Fatalf("expected empty start player name, got %q", r.StartPlayerName)
	}
	if !r.Players[0].Winner {
		t.Fatal("a single player is the winner")
	}
}
