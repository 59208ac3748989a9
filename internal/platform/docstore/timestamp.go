// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"bytes"
	"fmt"
	"time"
)

// TimeLayout is the fixed-width UTC layout every stored timestamp uses, so
// that ordering by a date field sorts the same in every backend.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp is a time stored in [TimeLayout].
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the stored precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// String formats the timestamp in [TimeLayout].
func (ts Timestamp) String() string {
	return ts.UTC().Format(TimeLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ts.String() + `"`), nil
}

// UnmarshalJSON also accepts any RFC 3339 value so hand-written documents load.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("docstore: timestamp must be a string, got %s", data)
	}

	parsed, err := time.Parse(time.RFC3339Nano, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("docstore: invalid timestamp: %w", err)
	}
	*ts = NewTimestamp(parsed)
	return nil
}
