package metadata

import (
	"fmt"
	"strconv"
)

// Count is a non-negative counter that marshals to JSON as a decimal
// string rather than a JSON number, preserving values beyond 2^53 that
// a JSON-number round trip through float64 would corrupt (spec §4.4).
type Count uint64

// MarshalJSON implements json.Marshaler.
func (c Count) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(c), 10))), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("count must be a JSON string: %w", err)
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", s, err)
	}

	*c = Count(v)

	return nil
}
