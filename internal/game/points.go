package game

// Points per slot for each round, highest first. Tied players share
// consecutive slots, so a two-way tie for 1st uses slots 0 and 1.
var roundGoalPoints = [RoundCount][]int{
	{4, 1, 0},
	{5, 2, 1},
	{6, 3, 2},
	{7, 4, 3},
}

// Same table for every biome.
var nectarPoints = []int{5, 2}

const (
	maxRoundRank  = 3
	maxNectarRank = 2
)

// RoundGoalPoints returns a copy of the point table for round r (0-based).
func RoundGoalPoints(r int) []int {
	return append([]int(nil), roundGoalPoints[r]...)
}

// NectarPoints returns a copy of the per-biome nectar point table.
func NectarPoints() []int {
	return append([]int(nil), nectarPoints...)
}
