package game

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store owns the live GameState and is its only writer. Every operation
// swaps in a complete new state and hands a copy to each subscriber while
// the lock is held, so subscribers see snapshots in mutation order and must
// not call back into the Store from the callback.
type Store struct {
	mu    sync.Mutex
	state GameState

	subs    map[int]func(GameState)
	nextSub int

	newID func() string
	log   zerolog.Logger
}

func NewStore(logger zerolog.Logger) *Store {
	s := &Store{
		subs:  make(map[int]func(GameState)),
		newID: uuid.NewString,
		log:   logger.With().Str("component", "game").Logger(),
	}
	s.state = s.initialState()
	return s
}

func (s *Store) initialState() GameState {
	return GameState{
		GameID:       s.newID(),
		Players:      []Player{},
		CurrentPhase: PhaseSetup,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn for every published state, starting with the
// current one. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(GameState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	fn(s.state.Clone())
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// update applies fn to a private copy of the state. When fn reports no
// change nothing is published.
func (s *Store) update(fn func(st *GameState) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	if !fn(&next) {
		return
	}
	s.state = next
	for _, sub := range s.subs {
		sub(s.state.Clone())
	}
}

func (s *Store) AddPlayer(name, color string) string {
	id := s.newID()
	s.update(func(st *GameState) bool {
		st.Players = append(st.Players, newPlayer(id, name, color))
		return true
	})
	s.log.Debug().Str("playerId", id).Str("name", name).Msg("player added")
	return id
}

// RemovePlayer drops a player. Removing the start player unsets it.
func (s *Store) RemovePlayer(id string) {
	s.update(func(st *GameState) bool {
		kept := st.Players[:0]
		for _, p := range st.Players {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		changed := len(kept) != len(st.Players)
		st.Players = kept
		if st.StartPlayerID != nil && *st.StartPlayerID == id {
			st.StartPlayerID = nil
		}
		return changed
	})
}

// SetStartPlayer records who goes first. Unknown ids are ignored.
func (s *Store) SetStartPlayer(id string) {
	s.update(func(st *GameState) bool {
		if _, ok := st.Player(id); !ok {
			return false
		}
		st.StartPlayerID = &id
		return true
	})
}

// RandomizeStartPlayer picks a start player uniformly at random. It reports
// false when there are no players.
func (s *Store) RandomizeStartPlayer() (string, bool) {
	var picked string
	s.update(func(st *GameState) bool {
		if len(st.Players) == 0 {
			return false
		}
		picked = st.Players[rand.Intn(len(st.Players))].ID
		st.StartPlayerID = &picked
		return true
	})
	return picked, picked != ""
}

func (s *Store) SetPhase(phase Phase) {
	s.update(func(st *GameState) bool {
		st.CurrentPhase = phase
		return true
	})
}

// StartScoring enters the scoring phase at the first category.
func (s *Store) StartScoring() {
	s.update(func(st *GameState) bool {
		st.CurrentPhase = PhaseScoring
		st.CurrentScoringCategoryIndex = 0
		return true
	})
}

// UpdateScore sets a manually entered score for one player.
func (s *Store) UpdateScore(playerID string, category Category, points int) {
	s.update(func(st *GameState) bool {
		if _, ok := st.Player(playerID); !ok {
			return false
		}
		st.Players = ApplyManualScore(st.Players, playerID, category, points)
		return true
	})
}

// UpdateRoundPlacement sets one player's rank for round r and rescores the
// round goals of every player, since ties shift everyone's share.
func (s *Store) UpdateRoundPlacement(playerID string, r, rank int) {
	if r < 0 || r >= RoundCount || rank < 0 || rank > maxRoundRank {
		s.log.Warn().Int("round", r).Int("rank", rank).Msg("round placement out of range")
		return
	}
	s.update(func(st *GameState) bool {
		found := false
		for i := range st.Players {
			if st.Players[i].ID == playerID {
				st.Players[i].RoundPlacements[r] = rank
				found = true
			}
		}
		if !found {
			return false
		}
		st.Players = ApplyPlacement(st.Players, CategoryRoundGoals)
		return true
	})
}

// UpdateNectarPlacement sets one player's rank for biome b and rescores
// nectar for every player.
func (s *Store) UpdateNectarPlacement(playerID string, b, rank int) {
	if b < 0 || b >= BiomeCount || rank < 0 || rank > maxNectarRank {
		s.log.Warn().Int("biome", b).Int("rank", rank).Msg("nectar placement out of range")
		return
	}
	s.update(func(st *GameState) bool {
		found := false
		for i := range st.Players {
			if st.Players[i].ID == playerID {
				st.Players[i].NectarPlacements[b] = rank
				found = true
			}
		}
		if !found {
			return false
		}
		st.Players = ApplyPlacement(st.Players, CategoryNectar)
		return true
	})
}

func (s *Store) ResetAllRoundPlacements() {
	s.update(func(st *GameState) bool {
		for i := range st.Players {
			st.Players[i].RoundPlacements = [RoundCount]int{}
		}
		st.Players = ApplyPlacement(st.Players, CategoryRoundGoals)
		return true
	})
}

func (s *Store) ResetAllNectarPlacements() {
	s.update(func(st *GameState) bool {
		for i := range st.Players {
			st.Players[i].NectarPlacements = [BiomeCount]int{}
		}
		st.Players = ApplyPlacement(st.Players, CategoryNectar)
		return true
	})
}

// NextCategory advances the scoring cursor, moving to RESULT after the last
// category.
func (s *Store) NextCategory() {
	s.update(func(st *GameState) bool {
		next := st.CurrentScoringCategoryIndex + 1
		if next >= len(Categories) {
			st.CurrentPhase = PhaseResult
			return true
		}
		st.CurrentScoringCategoryIndex = next
		s.log.Debug().Str("category", string(st.CurrentCategory())).Msg("scoring category")
		return true
	})
}

// PrevCategory moves the cursor back, returning to SETUP before the first
// category.
func (s *Store) PrevCategory() {
	s.update(func(st *GameState) bool {
		prev := st.CurrentScoringCategoryIndex - 1
		if prev < 0 {
			st.CurrentPhase = PhaseSetup
			st.CurrentScoringCategoryIndex = 0
			return true
		}
		st.CurrentScoringCategoryIndex = prev
		s.log.Debug().Str("category", string(st.CurrentCategory())).Msg("scoring category")
		return true
	})
}

// BackToScoring reopens scoring at the last category for adjustments.
func (s *Store) BackToScoring() {
	s.update(func(st *GameState) bool {
		st.CurrentPhase = PhaseScoring
		st.CurrentScoringCategoryIndex = len(Categories) - 1
		return true
	})
}

// ResetGame discards the current game and starts a fresh one.
func (s *Store) ResetGame() {
	fresh := s.initialState()
	s.update(func(st *GameState) bool {
		*st = fresh
		return true
	})
	s.log.Info().Str("gameId", fresh.GameID).Msg("new game")
}
