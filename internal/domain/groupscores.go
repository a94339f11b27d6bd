package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GroupScores holds per-group confidences and preserves group declaration
// order through JSON round trips. A plain map would marshal with sorted keys.
type GroupScores struct {
	order  []string
	scores map[string]float64
}

// NewGroupScores returns an empty score set.
func NewGroupScores() *GroupScores {
	return &GroupScores{scores: make(map[string]float64)}
}

// Set records the confidence for a group. First insertion fixes the group's
// position in the output order.
func (g *GroupScores) Set(group string, score float64) {
	if g.scores == nil {
		g.scores = make(map[string]float64)
	}
	if _, ok := g.scores[group]; !ok {
		g.order = append(g.order, group)
	}
	g.scores[group] = score
}

// Get returns the confidence recorded for a group.
func (g *GroupScores) Get(group string) (float64, bool) {
	score, ok := g.scores[group]
	return score, ok
}

// Groups returns the group names in insertion order.
func (g *GroupScores) Groups() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of groups recorded.
func (g *GroupScores) Len() int {
	return len(g.order)
}

// MarshalJSON writes the scores as a JSON object in insertion order.
func (g *GroupScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.scores[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the key order it appears in.
func (g *GroupScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("group scores: expected object, got %v", tok)
	}
	g.order = nil
	g.scores = make(map[string]float64)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		// Inside an object the decoder only yields string keys.
		key := keyTok.(string)
		var val float64
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("group scores: value for %q: %w", key, err)
		}
		g.Set(key, val)
	}
	_, err = dec.Token()
	return err
}
