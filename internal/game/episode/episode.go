// Package episode records (state, action, reward) trajectories and encodes
// them as JSON documents for offline training.
package episode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDocument is returned when a document holds no episode.
	ErrEmptyDocument = errors.New("document contains no episode")
	// ErrMalformed is returned when an episode's columns disagree.
	ErrMalformed = errors.New("malformed episode")
)

// Step is one recorded tick.
type Step struct {
	Tick   uint64
	State  []float64
	Action [3]float64
	Reward float64
}

// Episode is the columnar form written to disk.
type Episode struct {
	States  [][]float64  `json:"states"`
	Actions [][3]float64 `json:"actions"`
	Rewards []float64    `json:"rewards"`
}

// Len returns the number of steps.
func (e *Episode) Len() int {
	return len(e.Rewards)
}

// TotalReward sums the reward column.
func (e *Episode) TotalReward() float64 {
	var sum float64
	for _, r := range e.Rewards {
		sum += r
	}
	return sum
}

// Validate checks that all columns have the same length and that every
// state vector has the same width.
func (e *Episode) Validate() error {
	if len(e.States) != len(e.Rewards) || len(e.Actions) != len(e.Rewards) {
		return fmt.Errorf("%w: %d states, %d actions, %d rewards",
			ErrMalformed, len(e.States), len(e.Actions), len(e.Rewards))
	}
	for i, s := range e.States {
		if len(s) != len(e.States[0]) {
			return fmt.Errorf("%w: state %d has width %d, want %d", ErrMalformed, i, len(s), len(e.States[0]))
		}
	}
	return nil
}

// Format selects the top-level shape of an exported document.
type Format int

const (
	// FormatWrapped writes a one-element array: [{"states":...}].
	FormatWrapped Format = iota
	// FormatBare writes the episode object alone.
	FormatBare
)

func (f Format) String() string {
	switch f {
	case FormatWrapped:
		return "wrapped"
	case FormatBare:
		return "bare"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a config name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "wrapped":
		return FormatWrapped, nil
	case "bare":
		return FormatBare, nil
	}
	return 0, fmt.Errorf("unknown export format %q", s)
}

// Encode marshals the episode in the given format.
func Encode(e *Episode, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatWrapped:
		data, err = json.Marshal([]*Episode{e})
	case FormatBare:
		data, err = json.Marshal(e)
	default:
		return nil, fmt.Errorf("unknown export format %d", int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode episode: %w", err)
	}
	return data, nil
}

// Decode parses a wrapped or bare document. A wrapped document with more
// than one episode yields the first.
func Decode(data []byte) (*Episode, error) {
	all, err := DecodeAll(data)
	if err != nil {
		return nil, err
	}
	return all[0], nil
}

// DecodeAll parses a wrapped or bare document and returns every episode in it.
func DecodeAll(data []byte) ([]*Episode, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, ErrEmptyDocument
	}

	var eps []*Episode
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &eps); err != nil {
			return nil, fmt.Errorf("failed to decode episodes: %w", err)
		}
	} else {
		var e Episode
		if err := json.Unmarshal([]byte(trimmed), &e); err != nil {
			return nil, fmt.Errorf("failed to decode episode: %w", err)
		}
		eps = []*Episode{&e}
	}
	if len(eps) == 0 {
		return nil, ErrEmptyDocument
	}
	for i, e := range eps {
		if e == nil {
			return nil, fmt.Errorf("episode %d: %w", i, ErrMalformed)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("episode %d: %w", i, err)
		}
	}
	return eps, nil
}
