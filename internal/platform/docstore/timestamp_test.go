// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/docstore"
)

/*
TestTimestamp_FixedWidth verifies that stored timestamps sort lexically in time order.
*/
func TestTimestamp_FixedWidth(t *testing.T) {
	whole := docstore.NewTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	fraction := docstore.NewTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 120_000_000, time.UTC))

	assert.Equal(t, "2026-01-02T03:04:05.000000Z", whole.String())
	assert.Equal(t, "2026-01-02T03:04:05.120000Z", fraction.String())
	assert.Less(t, whole.String(), fraction.String())
}

/*
TestTimestamp_JSON covers null handling and RFC 3339 input with offsets.
*/
func TestTimestamp_JSON(t *testing.T) {
	var holder struct {
		At  docstore.Timestamp  `json:"at"`
		Opt *docstore.Timestamp `json:"opt"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"at":"2026-01-02T10:04:05+07:00","opt":null}`), &holder))
	assert.Equal(t, "2026-01-02T03:04:05.000000Z", holder.At.String())
	assert.Nil(t, holder.Opt)

	raw, err := json.Marshal(docstore.Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	assert.Error(t, json.Unmarshal([]byte(`{"at":42}`), &holder))
}
