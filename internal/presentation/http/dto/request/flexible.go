package request

import "encoding/json"

// RawValue accepts a JSON string or number and keeps it as the raw
// text. Form fields arrive as strings while API clients tend to send
// numbers; parsing and coercion happen downstream either way.
type RawValue string

// UnmarshalJSON implements json.Unmarshaler
func (r *RawValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RawValue(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler
func (r RawValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// String returns the raw text
func (r RawValue) String() string {
	return string(r)
}
