// Package history keeps the archive of finished games.
package history

import (
	"encoding/json"
	"maps"
	"sync"
	"time"

	"github.com/kiliankoe/wingscore/internal/game"
	"github.com/kiliankoe/wingscore/internal/storage"
	"github.com/rs/zerolog"
)

// StorageKey is where the archive lives in the persistence provider.
const StorageKey = "wingspan_game_history"

type PlayerResult struct {
	Name   string                `json:"name"`
	Total  int                   `json:"total"`
	Scores map[game.Category]int `json:"scores"`
	Winner bool                  `json:"winner"`
	Color  string                `json:"color"`
}

// GameRecord is one archived game. Date is kept as the stored ISO-8601
// text so records written with or without a zone offset load unchanged.
type GameRecord struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	StartPlayerName string         `json:"startPlayerName"`
	Players         []PlayerResult `json:"players"`
}

// Archive holds GameRecords most-recent-first. Memory is authoritative;
// persistence is best effort and failures are only logged.
type Archive struct {
	mu      sync.Mutex
	records []GameRecord
	store   storage.Provider
	onWrite []func([]GameRecord)
	log     zerolog.Logger
}

// Open loads the archive from store. Unreadable or malformed data yields an
// empty archive.
func Open(store storage.Provider, logger zerolog.Logger) *Archive {
	a := &Archive{
		store:   store,
		records: []GameRecord{},
		log:     logger.With().Str("component", "history").Logger(),
	}

	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to load game history")
		return a
	}
	if !ok || raw == "" {
		return a
	}
	var records []GameRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		a.log.Error().Err(err).Msg("failed to parse game history")
		return a
	}
	if records != nil {
		a.records = records
	}
	a.log.Info().Int("games", len(a.records)).Msg("game history loaded")
	return a
}

// OnChange registers fn to receive a copy of the archive after every
// mutation. fn runs under the archive lock and must not call back in.
func (a *Archive) OnChange(fn func([]GameRecord)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onWrite = append(a.onWrite, fn)
}

// Records returns a copy of the archive, most recent first.
func (a *Archive) Records() []GameRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneRecords(a.records)
}

// Get looks a record up by game id.
func (a *Archive) Get(id string) (GameRecord, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.records {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return GameRecord{}, false
}

// SaveGame replaces the record with the same id in place, or prepends it.
// It reports whether an earlier record was replaced.
func (a *Archive) SaveGame(record GameRecord) (replaced bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	record = record.clone()
	next := make([]GameRecord, 0, len(a.records)+1)
	for _, r := range a.records {
		if r.ID == record.ID {
			next = append(next, record)
			replaced = true
			continue
		}
		next = append(next, r)
	}
	if !replaced {
		next = append([]GameRecord{record}, next...)
	}
	a.records = next
	a.persist()
	a.log.Info().Str("gameId", record.ID).Bool("replaced", replaced).Msg("game saved")
	return replaced
}

// DeleteGame removes the record with id, if any.
func (a *Archive) DeleteGame(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := make([]GameRecord, 0, len(a.records))
	for _, r := range a.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	a.records = next
	a.persist()
}

// ClearHistory drops every record and removes the stored key.
func (a *Archive) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = []GameRecord{}
	if err := a.store.Remove(StorageKey); err != nil {
		a.log.Error().Err(err).Msg("failed to clear history")
	}
	a.notify()
}

func (a *Archive) persist() {
	b, err := json.Marshal(a.records)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to encode history")
	} else if err := a.store.Set(StorageKey, string(b)); err != nil {
		a.log.Error().Err(err).Msg("failed to save history")
	}
	a.notify()
}

func (a *Archive) notify() {
	for _, fn := range a.onWrite {
		fn(cloneRecords(a.records))
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// PlayedAt parses Date. Zoneless forms are read as UTC.
func (r GameRecord) PlayedAt() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r GameRecord) clone() GameRecord {
	out := r
	out.Players = make([]PlayerResult, len(r.Players))
	for i, p := range r.Players {
		p.Scores = maps.Clone(p.Scores)
		out.Players[i] = p
	}
	return out
}

func cloneRecords(records []GameRecord) []GameRecord {
	out := make([]GameRecord, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}
