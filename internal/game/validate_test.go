package game

import "testing"

func withRound(ranks ...int) []Player {
	players := make([]Player, len(ranks))
	for i, r := range ranks {
		players[i].RoundPlacements[0] = r
	}
	return players
}

func withBiome(ranks ...int) []Player {
	players := make([]Player, len(ranks))
	for i, r := range ranks {
		players[i].NectarPlacements[0] = r
	}
	return players
}

func TestValidateRoundGoalsRow(t *testing.T) {
	tests := []struct {
		ranks []int
		want  bool
	}{
		{[]int{0, 0, 0}, true},
		{[]int{1, 2, 3}, true},
		{[]int{1, 0, 0}, true},
		{[]int{2, 0, 0}, false},
		{[]int{1, 3, 0}, false},
		{[]int{1, 2, 2}, true},
		{[]int{1, 2, 2, 3}, false},
		{[]int{1, 1, 0}, true},
		{[]int{1, 1, 3}, true},
		{[]int{1, 1, 2}, false},
		{[]int{1, 1, 1, 0}, true},
		{[]int{1, 1, 1, 2}, false},
		{[]int{1, 1, 1, 3}, false},
	}
	for _, tt := range tests {
		if got := ValidateRoundGoalsRow(withRound(tt.ranks...), 0); got != tt.want {
			t.Fatalf("ranks %v: expected %v, got %v", tt.ranks, tt.want, got)
		}
	}
}

func TestValidateNectarRow(t *testing.T) {
	tests := []struct {
		ranks []int
		want  bool
	}{
		{[]int{0, 0}, true},
		{[]int{1, 2}, true},
		{[]int{2, 2}, false},
		{[]int{1, 1}, true},
		{[]int{1, 1, 2}, false},
		{[]int{1, 2, 2}, true},
	}
	for _, tt := range tests {
		if got := ValidateNectarRow(withBiome(tt.ranks...), 0); got != tt.want {
			t.Fatalf("ranks %v: expected %v, got %v", tt.ranks, tt.want, got)
		}
	}
}

func TestValidateAll(t *testing.T) {
	players := make([]Player, 2)
	if !ValidateAllRoundGoals(players) || !ValidateAllNectar(players) {
		t.Fatal("empty grids should be valid")
	}
	players[0].RoundPlacements[3] = 2
	if ValidateAllRoundGoals(players) {
		t.Fatal("round 4 has a 2nd without a 1st")
	}
	players[1].NectarPlacements[2] = 2
	if ValidateAllNectar(players) {
		t.Fatal("wetland has a 2nd without a 1st")
	}
}
