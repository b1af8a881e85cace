// Package featureflags gates optional favorite behaviors behind FEATURE_FLAGS.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Flag names a gated behavior.
type Flag string

const (
	// SwapiValidation checks catalog ids against the external API before a favorite is stored.
	SwapiValidation Flag = "swapi_validation"
	// FavoriteRepoint enables PUT /favorite/:kind/:favoriteId.
	FavoriteRepoint Flag = "favorite_repoint"
)

// Known lists every flag the service evaluates.
var Known = []Flag{SwapiValidation, FavoriteRepoint}

// Set evaluates flags parsed from "name=value" pairs, e.g.
// "swapi_validation=on,favorite_repoint=25%".
type Set struct {
	values map[Flag]string
}

// Parse builds a Set. Malformed pairs are skipped; a later pair overrides an earlier one.
func Parse(raw string) *Set {
	values := make(map[Flag]string)
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, value = normalize(name), normalize(value)
		if name == "" || value == "" {
			continue
		}
		values[Flag(name)] = value
	}
	return &Set{values: values}
}

// Enabled reports whether flag is on for userID. Values are on/true/1,
// off/false/0, or "N%" for a deterministic per-user rollout.
func (s *Set) Enabled(flag Flag, userID uint) bool {
	if s == nil {
		return false
	}
	value, ok := s.values[Flag(normalize(string(flag)))]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctRaw, isPct := strings.CutSuffix(value, "%")
	if !isPct {
		return false
	}
	pct, err := strconv.Atoi(pctRaw)
	switch {
	case err != nil || pct <= 0:
		return false
	case pct >= 100:
		return true
	case userID == 0:
		return false
	}
	return bucket(flag, userID) < pct
}

// Snapshot evaluates every known and configured flag for userID.
func (s *Set) Snapshot(userID uint) map[string]bool {
	out := make(map[string]bool, len(Known)+len(s.values))
	for _, f := range Known {
		out[string(f)] = s.Enabled(f, userID)
	}
	for name := range s.values {
		out[string(name)] = s.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(flag Flag, userID uint) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", normalize(string(flag)), userID)
	return int(h.Sum32() % 100)
}
