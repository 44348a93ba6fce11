// Package translate maps upstream club and competition names to their
// Japanese display names.
package translate

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Pair is one mapping entry.
type Pair struct {
	From string
	To   string
}

// Mapping is an ordered name table. Order decides which entry wins when
// several keys overlap by substring.
type Mapping []Pair

// Lookup returns the exact-key translation.
func (m Mapping) Lookup(name string) (string, bool) {
	for _, p := range m {
		if p.From == name {
			return p.To, true
		}
	}
	return "", false
}

// Translate returns the display name for name: exact key first, then the
// first key that contains or is contained in name, else name unchanged.
// Matching is case-sensitive on NFC-normalized text.
func Translate(name string, m Mapping) string {
	if name == "" {
		return name
	}
	key := norm.NFC.String(name)
	if to, ok := m.Lookup(key); ok {
		return to
	}
	for _, p := range m {
		if p.From == "" {
			continue
		}
		if strings.Contains(key, p.From) || strings.Contains(p.From, key) {
			return p.To
		}
	}
	return name
}

// Team translates a club name with the Teams table.
func Team(name string) string {
	return Translate(name, Teams)
}

// League translates a competition name with the Leagues table.
func League(name string) string {
	return Translate(name, Leagues)
}

// Sources returns every upstream name that maps to the display name to.
func (m Mapping) Sources(to string) []string {
	var out []string
	for _, p := range m {
		if p.To == to {
			out = append(out, p.From)
		}
	}
	return out
}
