package core

import (
	"bytes"
	"encoding/json"
	"time"
)

// ETA is the outcome of a resolution: either a UTC instant or the explicit
// "no future occurrence" sentinel (Valid == false).
type ETA struct {
	At    time.Time
	Valid bool
}

// None is the "no future occurrence" sentinel.
var None = ETA{}

// At wraps t as a resolved ETA, converted to UTC.
func At(t time.Time) ETA {
	return ETA{At: t.UTC(), Valid: true}
}

// IsNone reports whether the schedule has no qualifying instant.
func (e ETA) IsNone() bool { return !e.Valid }

func (e ETA) String() string {
	if !e.Valid {
		return "none"
	}
	return e.At.Format(time.RFC3339)
}

// MarshalJSON encodes the ETA as an RFC 3339 UTC timestamp, or null for None.
func (e ETA) MarshalJSON() ([]byte, error) {
	if !e.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(e.At.UTC().Format(time.RFC3339))
}

// UnmarshalJSON accepts an RFC 3339 timestamp or null.
func (e *ETA) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*e = None
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*e = At(t)
	return nil
}
