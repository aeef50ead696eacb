package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kiliankoe/wingscore/internal/game"
)

// Export appends a readable summary of record to filename. A revised record
// is written again under a header marking it as a correction of the earlier
// block with the same id.
func Export(record GameRecord, filename string, revised bool) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fileExists := false
	if _, err := os.Stat(filename); err == nil {
		fileExists = true
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	if fileExists {
		sb.WriteString("\n")
	}
	if revised {
		sb.WriteString(fmt.Sprintf("Wingspan Game %s (revised)\n", record.ID))
	} else {
		sb.WriteString(fmt.Sprintf("Wingspan Game %s\n", record.ID))
	}
	played := record.Date
	if t, ok := record.PlayedAt(); ok {
		played = t.Local().Format("2006-01-02 15:04:05")
	}
	sb.WriteString(fmt.Sprintf("Played: %s\n", played))
	if record.StartPlayerName != "" {
		sb.WriteString(fmt.Sprintf("Start player: %s\n", record.StartPlayerName))
	}
	sb.WriteString(strings.Repeat("=", 50) + "\n")

	players := append([]PlayerResult(nil), record.Players...)
	sort.SliceStable(players, func(i, j int) bool { return players[i].Total > players[j].Total })
	for _, p := range players {
		marker := ""
		if p.Winner {
			marker = " (winner)"
		}
		sb.WriteString(fmt.Sprintf("- %s: %d points%s\n", p.Name, p.Total, marker))
		parts := make([]string, 0, len(game.Categories))
		for _, c := range game.Categories {
			parts = append(parts, fmt.Sprintf("%s %d", c, p.Scores[c]))
		}
		sb.WriteString("    " + strings.Join(parts, ", ") + "\n")
	}

	if _, err := file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}
