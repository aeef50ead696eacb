package game

// ResolvePlacements awards points for a single round or biome. ranks[i] is
// player i's placement (0 = unplaced). Ranks are processed from 1 up to
// maxRank; each group of tied players consumes as many table slots as it has
// members and splits their sum with floor division. Remainders are dropped,
// which saved games depend on.
func ResolvePlacements(ranks []int, table []int, maxRank int) []int {
	awards := make([]int, len(ranks))

	slot := 0
	for rank := 1; rank <= maxRank; rank++ {
		count := 0
		for _, r := range ranks {
			if r == rank {
				count++
			}
		}
		if count == 0 {
			continue
		}

		sum := 0
		for i := 0; i < count; i++ {
			if slot < len(table) {
				sum += table[slot]
			}
			slot++
		}
		share := sum / count

		for i, r := range ranks {
			if r == rank {
				awards[i] = share
			}
		}
	}
	return awards
}
