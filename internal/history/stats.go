package history

import (
	"sort"

	"github.com/kiliankoe/wingscore/internal/game"
)

// PlayerSummary aggregates every archived result under one player name.
type PlayerSummary struct {
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Average float64 `json:"average"`
	Max     int     `json:"max"`
	Min     int     `json:"min"`
}

// Summarize groups results by player name, best average first.
func Summarize(records []GameRecord) []PlayerSummary {
	byName := map[string]*PlayerSummary{}
	sums := map[string]int{}
	for _, r := range records {
		for _, p := range r.Players {
			s := byName[p.Name]
			if s == nil {
				s = &PlayerSummary{Name: p.Name, Max: p.Total, Min: p.Total}
				byName[p.Name] = s
			}
			s.Games++
			if p.Winner {
				s.Wins++
			}
			s.Max = max(s.Max, p.Total)
			s.Min = min(s.Min, p.Total)
			sums[p.Name] += p.Total
		}
	}

	out := make([]PlayerSummary, 0, len(byName))
	for name, s := range byName {
		s.Average = float64(sums[name]) / float64(s.Games)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// RecentPlayers lists up to n distinct player names, most recent game
// first. n <= 0 means no limit.
func RecentPlayers(records []GameRecord, n int) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range records {
		for _, p := range r.Players {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			out = append(out, p.Name)
			if n > 0 && len(out) == n {
				return out
			}
		}
	}
	return out
}

// CategoryAverages is the mean score per category over every archived
// player result.
func CategoryAverages(records []GameRecord) map[game.Category]float64 {
	sums := map[game.Category]int{}
	count := 0
	for _, r := range records {
		for _, p := range r.Players {
			count++
			for c, v := range p.Scores {
				sums[c] += v
			}
		}
	}

	out := make(map[game.Category]float64, len(game.Categories))
	for _, c := range game.Categories {
		if count > 0 {
			out[c] = float64(sums[c]) / float64(count)
		} else {
			out[c] = 0
		}
	}
	return out
}

// Bucket counts player totals in [From, To].
type Bucket struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Count int `json:"count"`
}

// ScoreDistribution buckets every archived player total into ranges of
// width size, from the lowest populated range to the highest. Empty ranges
// in between are kept so the result plots as a histogram.
func ScoreDistribution(records []GameRecord, size int) []Bucket {
	if size <= 0 {
		size = 10
	}
	counts := map[int]int{}
	lo, hi := 0, 0
	first := true
	for _, r := range records {
		for _, p := range r.Players {
			b := floorDiv(p.Total, size)
			counts[b]++
			if first {
				lo, hi = b, b
				first = false
			}
			lo = min(lo, b)
			hi = max(hi, b)
		}
	}
	if first {
		return []Bucket{}
	}
	out := make([]Bucket, 0, hi-lo+1)
	for b := lo; b <= hi; b++ {
		out = append(out, Bucket{From: b * size, To: b*size + size - 1, Count: counts[b]})
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// GroupComparison sets a player's latest game against the games before it.
type GroupComparison struct {
	Name            string  `json:"name"`
	Games           int     `json:"games"`
	Latest          int     `json:"latest"`
	PreviousGames   int     `json:"previousGames"`
	PreviousAverage float64 `json:"previousAverage"`
	PreviousBest    int     `json:"previousBest"`
	Delta           float64 `json:"delta"`
}

// CompareGroup reports, for each name in order, the most recent archived
// total against the average and best of that player's earlier games.
// Players without a game get a zero entry; Delta stays 0 without earlier
// games.
func CompareGroup(records []GameRecord, names []string) []GroupComparison {
	out := make([]GroupComparison, 0, len(names))
	for _, name := range names {
		c := GroupComparison{Name: name}
		sum := 0
		for _, r := range records {
			p, ok := r.player(name)
			if !ok {
				continue
			}
			c.Games++
			if c.Games == 1 {
				c.Latest = p.Total
				continue
			}
			if c.PreviousGames == 0 || p.Total > c.PreviousBest {
				c.PreviousBest = p.Total
			}
			c.PreviousGames++
			sum += p.Total
		}
		if c.PreviousGames > 0 {
			c.PreviousAverage = float64(sum) / float64(c.PreviousGames)
			c.Delta = float64(c.Latest) - c.PreviousAverage
		}
		out = append(out, c)
	}
	return out
}

func (r GameRecord) player(name string) (PlayerResult, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return PlayerResult{}, false
}
