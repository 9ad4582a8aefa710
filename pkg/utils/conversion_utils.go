package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number or a numeric string. Strings that do not
// parse decode as 0, matching what the web forms have always sent.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	v, err := decodeLooseNumber(b)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the plain value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is FlexFloat truncated toward zero ("12.7" -> 12).
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(b []byte) error {
	v, err := decodeLooseNumber(b)
	if err != nil {
		return err
	}
	*i = FlexInt(math.Trunc(v))
	return nil
}

// Int returns the plain value.
func (i FlexInt) Int() int {
	return int(i)
}

func decodeLooseNumber(b []byte) (float64, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		return ParseLooseFloat(s), nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseLooseFloat parses s as a float, returning 0 when it is not numeric.
func ParseLooseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
