package domain

import (
	"encoding"
	"encoding/json"
	"fmt"

	apperrors "sukhan/internal/platform/errors"
)

// Rating is the learner's recall grade. The zero value None marks a word that
// was seen but never rated; only Again through Easy can be applied.
type Rating int

const (
	None  Rating = iota // Seen, never rated.
	Again               // Not recalled.
	Hard                // Recalled with difficulty.
	Good                // Recalled.
	Easy                // Recalled effortlessly.
)

var (
	ratingNames  = [...]string{None: "none", Again: "again", Hard: "hard", Good: "good", Easy: "easy"}
	ratingByName = map[string]Rating{
		"again": Again,
		"hard":  Hard,
		"good":  Good,
		"easy":  Easy,
	}
)

var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

func (r Rating) String() string {
	if r >= None && r <= Easy {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r can be applied by RateWord.
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func ParseRating(s string) (Rating, error) {
	r, ok := ratingByName[s]
	if !ok {
		return None, fmt.Errorf("%w: %q", apperrors.ErrInvalidRating, s)
	}
	return r, nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON writes null for None and the lowercase name otherwise.
func (r Rating) MarshalJSON() ([]byte, error) {
	if r == None {
		return []byte("null"), nil
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidRating, int(r))
	}
	return json.Marshal(ratingNames[r])
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidRating, data)
	}
	return r.UnmarshalText([]byte(s))
}
