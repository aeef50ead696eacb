package game

// ApplyPlacement re-derives the placement-driven score for category across
// every round (round goals) or biome (nectar) and refreshes totals. Other
// categories come back as an unchanged copy. The input is never modified.
func ApplyPlacement(players []Player, category Category) []Player {
	out := clonePlayers(players)

	var points []int
	switch category {
	case CategoryRoundGoals:
		points = make([]int, len(out))
		for r := 0; r < RoundCount; r++ {
			ranks := make([]int, len(out))
			for i, p := range out {
				ranks[i] = p.RoundPlacements[r]
			}
			for i, award := range ResolvePlacements(ranks, roundGoalPoints[r], maxRoundRank) {
				points[i] += award
			}
		}
	case CategoryNectar:
		points = make([]int, len(out))
		for b := 0; b < BiomeCount; b++ {
			ranks := make([]int, len(out))
			for i, p := range out {
				ranks[i] = p.NectarPlacements[b]
			}
			for i, award := range ResolvePlacements(ranks, nectarPoints, maxNectarRank) {
				points[i] += award
			}
		}
	default:
		return out
	}

	for i := range out {
		out[i].Scores[category] = points[i]
		out[i].Total = sumScores(out[i].Scores)
	}
	return out
}

// ApplyManualScore overwrites one player's score for category. Values are
// taken as-is, negatives included. Unknown ids leave every player unchanged.
func ApplyManualScore(players []Player, playerID string, category Category, value int) []Player {
	out := clonePlayers(players)
	for i := range out {
		if out[i].ID == playerID {
			out[i].Scores[category] = value
			out[i].Total = sumScores(out[i].Scores)
		}
	}
	return out
}

func sumScores(scores map[Category]int) int {
	total := 0
	for _, v := range scores {
		total += v
	}
	return total
}

// Winners returns the ids of every player sharing the highest total.
func Winners(players []Player) []string {
	if len(players) == 0 {
		return nil
	}
	best := players[0].Total
	for _, p := range players[1:] {
		if p.Total > best {
			best = p.Total
		}
	}
	var ids []string
	for _, p := range players {
		if p.Total == best {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
