package models

import "encoding/json"

// APIError is the failure payload returned by the backend. Details is kept
// verbatim so it can be displayed without reformatting.
type APIError struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty"`
}

// HasDetails reports whether the payload carried a non-null details value
func (e *APIError) HasDetails() bool {
	return e != nil && len(e.Details) > 0 && string(e.Details) != "null"
}
