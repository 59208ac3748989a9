// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/platform/notify"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

/*
TestCenter_SuppressesDuplicates verifies the suppression window is keyed by
audience, kind and message.
*/
func TestCenter_SuppressesDuplicates(t *testing.T) {
	c := &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	center := notify.NewCenter(notify.WithClock(c.Now), notify.WithWindow(3*time.Second))

	_, shown := center.Show("owner", "Saved", notify.KindSuccess)
	assert.True(t, shown)

	c.Advance(time.Second)
	_, shown = center.Show("owner", "Saved", notify.KindSuccess)
	assert.False(t, shown, "same message inside the window")

	_, shown = center.Show("owner", "Saved", notify.KindInfo)
	assert.True(t, shown, "different kind")

	_, shown = center.Show("guest", "Saved", notify.KindSuccess)
	assert.True(t, shown, "different audience")

	c.Advance(3 * time.Second)
	_, shown = center.Show("owner", "Saved", notify.KindSuccess)
	assert.True(t, shown, "window elapsed")
}

/*
TestCenter_DrainAndBound checks drain order, clearing and the queue bound.
*/
func TestCenter_DrainAndBound(t *testing.T) {
	c := &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	center := notify.NewCenter(notify.WithClock(c.Now), notify.WithQueueSize(2))

	for _, message := range []string{"one", "two", "three"} {
		_, shown := center.Show("owner", message, notify.KindInfo)
		require.True(t, shown)
	}

	pending := center.Drain("owner")
	require.Len(t, pending, 2)
	assert.Equal(t, "two", pending[0].Message)
	assert.Equal(t, "three", pending[1].Message)

	assert.Empty(t, center.Drain("owner"))
	assert.NotNil(t, center.Drain("nobody"))
}
