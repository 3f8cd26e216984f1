package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Wire messages returned by the user processing endpoint.
const (
	SuccessMessage       = "User processed successfully by Python Lambda"
	DemoNote             = "Demo response - PostgreSQL database not configured"
	MissingFieldsMessage = `Missing "id" or "name"`
	InternalErrorMessage = "Internal server error"
)

// UserPayload is the decoded body of a process-user request. The fields
// are untyped because clients may send strings, numbers, booleans, or
// null and the endpoint echoes whatever it received.
type UserPayload struct {
	ID   any `json:"id"`
	Name any `json:"name"`
}

// User is the echoed identity in a successful process-user response.
type User struct {
	ID   any `json:"id"`
	Name any `json:"name"`
}

// ParseUserPayload decodes a request body into a UserPayload. An empty
// body is treated as an empty JSON object, so both fields stay nil.
// Numbers are kept as json.Number so the response echoes the client's
// digits exactly.
func ParseUserPayload(data []byte) (*UserPayload, error) {
	if len(data) == 0 {
		data = []byte("{}")
	}

	payload := &UserPayload{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(payload); err != nil {
		// The stream decoder reports truncated input as a bare EOF
		// error. Re-validate the raw bytes so callers see the standard
		// *json.SyntaxError with an offset instead.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if verr := json.Unmarshal(data, new(json.RawMessage)); verr != nil {
				return nil, verr
			}
		}
		return nil, err
	}
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON body")
	}

	return payload, nil
}

// HasMissingFields returns true if either identity field is absent or
// empty in the sense of the endpoint's contract.
func (p *UserPayload) HasMissingFields() bool {
	return IsFalsy(p.ID) || IsFalsy(p.Name)
}

// IsFalsy reports whether a decoded JSON value counts as missing.
// Absent fields, null, empty strings, false, zero numbers, and empty
// collections are all rejected by the endpoint; any other value is
// accepted, including "0" and strings of whitespace.
func IsFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
