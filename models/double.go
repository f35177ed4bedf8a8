package models

import (
	"encoding/json"
	"strings"
)

// Double unmarshals from both JSON numbers and numeric strings, since
// clients send amounts either way.
type Double float64

func (d *Double) UnmarshalJSON(input []byte) error {
	var buf float64
	if err := json.Unmarshal([]byte(strings.Trim(string(input), `"`)), &buf); err != nil {
		return err
	}
	*d = Double(buf)
	return nil
}

func (d Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(d))
}
