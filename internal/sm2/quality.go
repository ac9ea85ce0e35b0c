package sm2

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidQuality is returned when a value cannot be interpreted as a Quality.
var ErrInvalidQuality = errors.New("sm2: invalid quality")

// Quality is the self-assessed recall quality of a single review, 0 through 5.
// The numeric value feeds the easiness formula directly.
type Quality int

const (
	Blackout      Quality = iota // Complete blackout.
	Incorrect                    // Incorrect response; the correct one remembered.
	IncorrectEasy                // Incorrect response; the correct one seemed easy to recall.
	Hard                         // Correct response recalled with serious difficulty.
	Good                         // Correct response after a hesitation.
	Perfect                      // Perfect response.
)

var (
	qualityNames = [...]string{
		Blackout:      "blackout",
		Incorrect:     "incorrect",
		IncorrectEasy: "incorrect-easy",
		Hard:          "hard",
		Good:          "good",
		Perfect:       "perfect",
	}
	qualityByName = map[string]Quality{
		"blackout":       Blackout,
		"incorrect":      Incorrect,
		"incorrect-easy": IncorrectEasy,
		"hard":           Hard,
		"good":           Good,
		"perfect":        Perfect,
	}
)

var (
	_ fmt.Stringer             = Quality(0)
	_ json.Marshaler           = Quality(0)
	_ json.Unmarshaler         = (*Quality)(nil)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// Qualities returns every quality level in ordinal order.
func Qualities() []Quality {
	return []Quality{Blackout, Incorrect, IncorrectEasy, Hard, Good, Perfect}
}

// Forgot reports whether q represents a failed recall.
func (q Quality) Forgot() bool {
	switch q {
	case Blackout, Incorrect, IncorrectEasy:
		return true
	default:
		return false
	}
}

// Repeat reports whether the item should be repeated at the end of the session.
// Every forgotten item repeats, and so does a Hard recall.
func (q Quality) Repeat() bool {
	return q.Forgot() || q == Hard
}

// IsValid reports whether q is one of the six defined levels.
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// ParseQuality accepts a level name (case-insensitive, "incorrect_easy" is
// also understood) or its digit "0" through "5".
func ParseQuality(s string) (Quality, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if q, ok := qualityByName[name]; ok {
		return q, nil
	}
	if n, err := strconv.Atoi(name); err == nil && Quality(n).IsValid() {
		return Quality(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalJSON encodes q as its name.
func (q Quality) MarshalJSON() ([]byte, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts either the name or the bare number.
func (q *Quality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return q.UnmarshalText([]byte(s))
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil || !Quality(n).IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidQuality, data)
	}
	*q = Quality(n)
	return nil
}
