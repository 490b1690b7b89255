package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func TestRoomIsAvailable(t *testing.T) {
	room := &Room{BookedDates: []time.Time{day(11), day(15)}}

	assert.True(t, room.IsAvailable([]time.Time{day(12), day(13), day(14)}))
	assert.False(t, room.IsAvailable([]time.Time{day(10), day(11), day(12)}))
	assert.False(t, room.IsAvailable([]time.Time{day(15)}))
	assert.True(t, (&Room{}).IsAvailable([]time.Time{day(1)}))
}
