package patients

import (
	"encoding/json"
	"time"
)

var timestampLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Timestamp is an RFC 3339 instant. Records written by other clients may carry an empty or
// differently formatted value, those decode to the zero time instead of failing the document.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}
