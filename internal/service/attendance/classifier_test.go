package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/timeclock"
)

func dayShift(t *testing.T) shift.Definition {
	t.Helper()
	start, err := timeclock.Parse("09:00")
	require.NoError(t, err)
	end, err := timeclock.Parse("18:00")
	require.NoError(t, err)
	return shift.Definition{
		Type:                 shift.TypeDay,
		Start:                start,
		End:                  end,
		GraceMinutes:         30,
		HalfDayCutoffMinutes: 180,
		ConveyanceAmount:     decimal.NewFromInt(100),
	}
}

func nightShift(t *testing.T) shift.Definition {
	t.Helper()
	start, err := timeclock.Parse("21:00")
	require.NoError(t, err)
	end, err := timeclock.Parse("06:00")
	require.NoError(t, err)
	return shift.Definition{
		Type:                 shift.TypeNight,
		Start:                start,
		End:                  end,
		GraceMinutes:         30,
		HalfDayCutoffMinutes: 180,
		ConveyanceAmount:     decimal.NewFromInt(150),
	}
}

func TestClassifyDayShift(t *testing.T) {
	t.Parallel()
	def := dayShift(t)

	cases := []struct {
		scan string
		want attendance.Status
	}{
		{"08:45", attendance.StatusFullDay},
		{"09:00", attendance.StatusFullDay},
		{"09:30", attendance.StatusFullDay}, // exactly at grace deadline
		{"09:31", attendance.StatusHalfDay},
		{"11:59", attendance.StatusHalfDay},
		{"12:00", attendance.StatusHalfDay}, // exactly at half-day deadline
		{"12:01", attendance.StatusAbsent},
		{"15:00", attendance.StatusAbsent},
	}
	for _, tc := range cases {
		scan, err := timeclock.Parse(tc.scan)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Classify(scan, def), "scan at %s", tc.scan)
	}
}

func TestClassifyNightShift(t *testing.T) {
	t.Parallel()
	def := nightShift(t)

	cases := []struct {
		scan string
		want attendance.Status
	}{
		{"20:30", attendance.StatusFullDay},
		{"21:15", attendance.StatusFullDay},
		{"21:30", attendance.StatusFullDay},
		{"21:31", attendance.StatusHalfDay},
		{"23:45", attendance.StatusHalfDay},
		{"00:00", attendance.StatusHalfDay}, // exactly at half-day deadline, past midnight
		{"00:01", attendance.StatusAbsent},
		{"05:50", attendance.StatusAbsent},
	}
	for _, tc := range cases {
		scan, err := timeclock.Parse(tc.scan)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Classify(scan, def), "scan at %s", tc.scan)
	}
}

func TestClassifyCustomCutoffs(t *testing.T) {
	t.Parallel()

	def := dayShift(t)
	def.GraceMinutes = 10
	def.HalfDayCutoffMinutes = 60

	early, err := timeclock.Parse("09:10")
	require.NoError(t, err)
	mid, err := timeclock.Parse("10:00")
	require.NoError(t, err)
	late, err := timeclock.Parse("10:01")
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusFullDay, Classify(early, def))
	assert.Equal(t, attendance.StatusHalfDay, Classify(mid, def))
	assert.Equal(t, attendance.StatusAbsent, Classify(late, def))
}

func TestConveyanceFor(t *testing.T) {
	t.Parallel()
	base := decimal.NewFromInt(100)

	assert.True(t, ConveyanceFor(attendance.StatusFullDay, base).Equal(decimal.NewFromInt(100)))
	assert.True(t, ConveyanceFor(attendance.StatusHalfDay, base).Equal(decimal.NewFromInt(50)))
	assert.True(t, ConveyanceFor(attendance.StatusAbsent, base).IsZero())
	assert.True(t, ConveyanceFor(attendance.StatusLeave, base).IsZero())

	odd := decimal.NewFromFloat(75.25)
	assert.True(t, ConveyanceFor(attendance.StatusHalfDay, odd).Equal(decimal.NewFromFloat(37.63)))
}
