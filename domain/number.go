package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a numeric form field. It decodes from a JSON number or a numeric
// string; anything else (null, booleans, garbage text) decodes to 0 instead of
// failing the request.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		data = []byte(strings.TrimSpace(s))
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

// Float returns the raw value.
func (n Number) Float() float64 {
	return float64(n)
}
