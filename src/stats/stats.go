// Package stats reads Heartbeat stats snapshots and turns them into badge
// messages.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/5ht2/heartbeat/src/format"
	"github.com/5ht2/heartbeat/src/humantime"
)

// Device is one beating device.
type Device struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	LastBeat *time.Time `json:"last_beat"`
	NumBeats int64      `json:"num_beats"`
}

// Stats is a point-in-time view of the beat history.
type Stats struct {
	LastSeen       *time.Time
	Devices        []Device
	LongestAbsence time.Duration
	TotalVisits    int64
	TotalBeats     int64
}

// snapshot is the JSON shape served by the stats API.
type snapshot struct {
	LastSeen       *time.Time `json:"last_seen"`
	Devices        []Device   `json:"devices"`
	LongestAbsence int64      `json:"longest_absence"` // seconds
	TotalVisits    int64      `json:"total_visits"`
	TotalBeats     int64      `json:"total_beats"`
}

// Parse decodes a JSON stats snapshot.
func Parse(data []byte) (*Stats, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding stats: %w", err)
	}
	if snap.LongestAbsence < 0 {
		return nil, fmt.Errorf("decoding stats: negative longest_absence %d", snap.LongestAbsence)
	}
	return &Stats{
		LastSeen:       snap.LastSeen,
		Devices:        snap.Devices,
		LongestAbsence: time.Duration(snap.LongestAbsence) * time.Second,
		TotalVisits:    snap.TotalVisits,
		TotalBeats:     snap.TotalBeats,
	}, nil
}

// Load reads a JSON stats snapshot from path.
func Load(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stats %s: %w", path, err)
	}
	return Parse(data)
}

// Normalize fills in derived fields: last seen from the latest device beat,
// total beats from device counts, and a longest absence that is at least the
// current one.
func (s *Stats) Normalize(now time.Time) {
	if s.LastSeen == nil {
		for _, d := range s.Devices {
			if d.LastBeat != nil && (s.LastSeen == nil || d.LastBeat.After(*s.LastSeen)) {
				t := *d.LastBeat
				s.LastSeen = &t
			}
		}
	}
	if s.TotalBeats == 0 {
		for _, d := range s.Devices {
			s.TotalBeats += d.NumBeats
		}
	}
	if s.LastSeen != nil {
		if current := now.Sub(*s.LastSeen); current > s.LongestAbsence {
			s.LongestAbsence = current
		}
	}
}

// Messages returns the badge template values for s at now.
func (s *Stats) Messages(now time.Time) map[string]string {
	lastSeen, lastSeenPrecise := "never", "never"
	if s.LastSeen != nil {
		since := humantime.Since(*s.LastSeen, now)
		lastSeen = since.String()
		lastSeenPrecise = since.Precise()
	}
	return map[string]string{
		"last_seen":         lastSeen,
		"last_seen_precise": lastSeenPrecise,
		"total_beats":       format.Count(s.TotalBeats),
		"total_visits":      format.Count(s.TotalVisits),
		"devices":           strconv.Itoa(len(s.Devices)),
		"longest_absence":   humantime.Duration(s.LongestAbsence).Text(humantime.Precise, humantime.Present),
	}
}

// Expand replaces {key} placeholders in tmpl with values from vars. Unknown
// placeholders are left untouched.
func Expand(tmpl string, vars map[string]string) string {
	if !strings.Contains(tmpl, "{") || len(vars) == 0 {
		return tmpl
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
