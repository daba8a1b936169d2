package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Quantity is a non-negative amount decoded leniently from upstream JSON.
// Numbers and numeric strings keep their value; null, malformed, negative
// or non-finite input decodes to 0.
type Quantity float64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*q = 0
			return nil
		}
		*q = ParseQuantity(s)
		return nil
	}
	*q = ParseQuantity(string(data))
	return nil
}

// ParseQuantity converts s to a Quantity, falling back to 0 when s is not a
// valid non-negative decimal number. Hex floats such as "0x10p0" give 0.
func ParseQuantity(s string) Quantity {
	s = strings.TrimSpace(s)
	if digits := strings.ToLower(strings.TrimLeft(s, "+-")); strings.HasPrefix(digits, "0x") {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return Quantity(f)
}
