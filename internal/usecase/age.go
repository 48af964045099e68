package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidAgeFormat is returned when a threshold argument cannot be parsed.
var ErrInvalidAgeFormat = errors.New("invalid age format")

// ParseAge parses an age threshold: an integer with an optional trailing unit
// character, m for minutes, h for hours, d for days. Without a suffix the
// value is in hours.
func ParseAge(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidAgeFormat)
	}

	magnitude := s
	unit := time.Hour

	switch s[len(s)-1] {
	case 'm':
		magnitude = s[:len(s)-1]
		unit = time.Minute
	case 'h':
		magnitude = s[:len(s)-1]
		unit = time.Hour
	case 'd':
		magnitude = s[:len(s)-1]
		unit = 24 * time.Hour
	}

	n, err := strconv.ParseUint(magnitude, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAgeFormat, s)
	}

	// Duration is an int64 of nanoseconds; a magnitude that overflows it
	// would wrap negative and match every object.
	if n > uint64(math.MaxInt64/int64(unit)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAgeFormat, s)
	}

	return time.Duration(n) * unit, nil
}
