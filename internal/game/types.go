package game

import "maps"

type Phase string

const (
	PhaseSetup     Phase = "SETUP"
	PhaseSelection Phase = "SELECTION"
	PhaseScoring   Phase = "SCORING"
	PhaseResult    Phase = "RESULT"
	PhaseStats     Phase = "STATS"
)

// ParsePhase reports whether s names a known phase.
func ParsePhase(s string) (Phase, bool) {
	switch p := Phase(s); p {
	case PhaseSetup, PhaseSelection, PhaseScoring, PhaseResult, PhaseStats:
		return p, true
	}
	return "", false
}

type Category string

const (
	CategoryBirds      Category = "birds"
	CategoryBonus      Category = "bonus"
	CategoryRoundGoals Category = "round_goals"
	CategoryEggs       Category = "eggs"
	CategoryFood       Category = "food"
	CategoryTucked     Category = "tucked"
	CategoryNectar     Category = "nectar"
)

// Categories is the order the scoring phase walks through.
var Categories = []Category{
	CategoryBirds,
	CategoryBonus,
	CategoryRoundGoals,
	CategoryEggs,
	CategoryFood,
	CategoryTucked,
	CategoryNectar,
}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

const (
	RoundCount = 4
	BiomeCount = 3 // Forest, Grassland, Wetland
)

type Player struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Color            string           `json:"color"`
	RoundPlacements  [RoundCount]int  `json:"roundPlacements"`  // 0 = none, 1..3
	NectarPlacements [BiomeCount]int  `json:"nectarPlacements"` // 0 = none, 1..2
	Scores           map[Category]int `json:"scores"`
	Total            int              `json:"total"`
}

type GameState struct {
	GameID                      string   `json:"gameId"`
	Players                     []Player `json:"players"`
	CurrentPhase                Phase    `json:"currentPhase"`
	CurrentScoringCategoryIndex int      `json:"currentScoringCategoryIndex"`
	StartPlayerID               *string  `json:"startPlayerId"`
}

// CurrentCategory is the category under the scoring cursor.
func (s GameState) CurrentCategory() Category {
	return Categories[s.CurrentScoringCategoryIndex]
}

// Player returns the player with the given id.
func (s GameState) Player(id string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a deep copy safe to hand out to subscribers.
func (s GameState) Clone() GameState {
	out := s
	out.Players = clonePlayers(s.Players)
	if s.StartPlayerID != nil {
		id := *s.StartPlayerID
		out.StartPlayerID = &id
	}
	return out
}

func newPlayer(id, name, color string) Player {
	return Player{ID: id, Name: name, Color: color, Scores: zeroScores()}
}

func zeroScores() map[Category]int {
	m := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		m[c] = 0
	}
	return m
}

func (p Player) clone() Player {
	out := p
	out.Scores = maps.Clone(p.Scores)
	if out.Scores == nil {
		out.Scores = zeroScores()
	}
	return out
}

func clonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p.clone()
	}
	return out
}
