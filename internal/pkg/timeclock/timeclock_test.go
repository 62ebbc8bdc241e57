package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Minutes
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"21:00", 1260, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestNormalizeOvernight(t *testing.T) {
	t.Parallel()

	// 21:20 is after noon: stays raw.
	assert.Equal(t, FromClock(21, 20), NormalizeOvernight(FromClock(21, 20)))

	// 05:50 is before noon: shifted to the next calendar day (29:50).
	assert.Equal(t, Minutes(1790), NormalizeOvernight(FromClock(5, 50)))

	// Exactly noon belongs to the starting day.
	assert.Equal(t, Noon, NormalizeOvernight(Noon))
	assert.Equal(t, Noon-1+MinutesPerDay, NormalizeOvernight(Noon-1))

	// Midnight is the first minute of the next day.
	assert.Equal(t, MinutesPerDay, NormalizeOvernight(FromClock(0, 0)))
}

func TestNormalizedOrderingAcrossMidnight(t *testing.T) {
	t.Parallel()

	start := NormalizeOvernight(FromClock(21, 0))
	early := NormalizeOvernight(FromClock(21, 20))
	late := NormalizeOvernight(FromClock(5, 50))

	// 05:50 next-day must sort after 21:20 same-day relative to a 21:00 start.
	assert.Less(t, int(start), int(early))
	assert.Less(t, int(early), int(late))
	assert.Equal(t, 530, int(late-start))
}

func TestFromTimeAndClock(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 14, 8, 45, 59, 0, time.UTC)
	assert.Equal(t, FromClock(8, 45), FromTime(ts))

	assert.Equal(t, "05:50", Minutes(1790).Clock())
	assert.Equal(t, "21:00", FromClock(21, 0).Clock())
	assert.Equal(t, "00:00", MinutesPerDay.Clock())
}

func TestAdd(t *testing.T) {
	t.Parallel()

	start := FromClock(9, 0)
	assert.Equal(t, FromClock(9, 30), start.Add(30))
	assert.Equal(t, FromClock(12, 0), start.Add(180))
}
