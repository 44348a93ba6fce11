package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	playersFile    = "players.json"
	matchesFile    = "matches.json"
	mediaFile      = "media-ratings.json"
	highlightsFile = "highlight-videos.json"
)

// Store reads and writes the JSON collections under a data directory.
// Each collection is read whole and written whole; there is no locking.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) LoadPlayers() ([]Player, error) {
	var players []Player
	if err := s.readJSON(playersFile, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Store) SavePlayers(players []Player) error {
	return s.writeJSON(playersFile, nonNil(players))
}

func (s *Store) LoadMatches() ([]Match, error) {
	var matches []Match
	if err := s.readJSON(matchesFile, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Store) SaveMatches(matches []Match) error {
	return s.writeJSON(matchesFile, nonNil(matches))
}

func (s *Store) LoadMediaRatings() ([]MatchMediaData, error) {
	var media []MatchMediaData
	if err := s.readJSON(mediaFile, &media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *Store) SaveMediaRatings(media []MatchMediaData) error {
	return s.writeJSON(mediaFile, nonNil(media))
}

// LoadHighlights returns the matchId -> video mapping. A missing file is an empty map.
func (s *Store) LoadHighlights() (map[string]HighlightVideo, error) {
	videos := make(map[string]HighlightVideo)
	if err := s.readJSON(highlightsFile, &videos); err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make(map[string]HighlightVideo)
	}
	return videos, nil
}

// SaveHighlights writes the mapping with keys ordered newest match date first.
func (s *Store) SaveHighlights(videos map[string]HighlightVideo) error {
	keys := make([]string, 0, len(videos))
	for k := range videos {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := dateSuffix(keys[i]), dateSuffix(keys[j])
		if di != dj {
			return di > dj
		}
		return keys[i] < keys[j]
	})

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		key, _ := json.Marshal(k)
		val, err := json.MarshalIndent(videos[k], "  ", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", k, err)
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(keys) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return s.writeFile(highlightsFile, buf.Bytes())
}

// EnsurePlaceholders adds a disabled entry for every match without one and
// returns how many were added.
func EnsurePlaceholders(videos map[string]HighlightVideo, matches []Match) int {
	added := 0
	for _, m := range matches {
		if _, ok := videos[m.MatchID]; ok {
			continue
		}
		videos[m.MatchID] = HighlightVideo{}
		added++
	}
	return added
}

// PlayersByID indexes players by id.
func PlayersByID(players []Player) map[string]Player {
	idx := make(map[string]Player, len(players))
	for _, p := range players {
		idx[p.ID] = p
	}
	return idx
}

func dateSuffix(matchID string) string {
	if i := strings.LastIndex(matchID, "-"); i >= 0 {
		return matchID[i+1:]
	}
	return matchID
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.writeFile(name, buf.Bytes())
}

// writeFile replaces the file in one rename so readers never see a partial write.
func (s *Store) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
