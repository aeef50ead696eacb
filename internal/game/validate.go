package game

// Advisory checks for the placement grids. The engine accepts any input;
// callers use these to disable illegal taps.

func countRanks(players []Player, rank func(Player) int) (c1, c2, c3 int) {
	for _, p := range players {
		switch rank(p) {
		case 1:
			c1++
		case 2:
			c2++
		case 3:
			c3++
		}
	}
	return
}

// ValidateRoundGoalsRow reports whether the placements in round r are a
// legal pattern.
func ValidateRoundGoalsRow(players []Player, r int) bool {
	c1, c2, c3 := countRanks(players, func(p Player) int { return p.RoundPlacements[r] })
	if c1+c2+c3 == 0 {
		return true
	}
	if c1 == 0 {
		return false
	}

	switch {
	case c1 == 1:
		if c3 > 0 && c2 == 0 {
			return false
		}
		if c2 >= 2 && c3 > 0 {
			return false
		}
	case c1 == 2:
		if c2 > 0 {
			return false
		}
	default:
		if c2 > 0 || c3 > 0 {
			return false
		}
	}
	return true
}

func ValidateAllRoundGoals(players []Player) bool {
	for r := 0; r < RoundCount; r++ {
		if !ValidateRoundGoalsRow(players, r) {
			return false
		}
	}
	return true
}

// ValidateNectarRow reports whether the placements in biome b are legal.
func ValidateNectarRow(players []Player, b int) bool {
	c1, c2, _ := countRanks(players, func(p Player) int { return p.NectarPlacements[b] })
	if c1+c2 == 0 {
		return true
	}
	if c1 == 0 {
		return false
	}
	return !(c1 >= 2 && c2 > 0)
}

func ValidateAllNectar(players []Player) bool {
	for b := 0; b < BiomeCount; b++ {
		if !ValidateNectarRow(players, b) {
			return false
		}
	}
	return true
}
