package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/holiday"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
)

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	missing   []string
	createErr map[string]error
	created   []attendance.Attendance
}

func (s *stubAttendanceRepo) ListMissingForDate(ctx context.Context, date time.Time) ([]string, error) {
	return s.missing, nil
}

func (s *stubAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if err := s.createErr[a.EmployeeID]; err != nil {
		return attendance.Attendance{}, err
	}
	s.created = append(s.created, a)
	return a, nil
}

type stubLeaveRepo struct {
	leave.LeaveRepository
	onLeave map[string]bool
}

func (s *stubLeaveRepo) AnyApprovedCovering(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return s.onLeave[employeeID], nil
}

type stubHolidayRepo struct {
	holiday.HolidayRepository
	isHoliday bool
}

func (s *stubHolidayRepo) ExistsOn(ctx context.Context, date time.Time) (bool, error) {
	return s.isHoliday, nil
}

func newTestMarker(att *stubAttendanceRepo, lv *stubLeaveRepo, hol *stubHolidayRepo) *AbsentMarker {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAbsentMarker(att, lv, hol, logger)
}

func TestAbsentMarkerBackfills(t *testing.T) {
	t.Parallel()

	att := &stubAttendanceRepo{missing: []string{"emp-1", "emp-2"}}
	lv := &stubLeaveRepo{onLeave: map[string]bool{"emp-2": true}}
	hol := &stubHolidayRepo{}

	err := newTestMarker(att, lv, hol).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, att.created, 2)
	assert.Equal(t, attendance.StatusAbsent, att.created[0].Status)
	assert.Equal(t, attendance.StatusLeave, att.created[1].Status)
	for _, row := range att.created {
		assert.True(t, row.ConveyanceAmount.IsZero())
		assert.True(t, row.DutyAmount.IsZero())
	}
}

func TestAbsentMarkerSkipsHolidays(t *testing.T) {
	t.Parallel()

	att := &stubAttendanceRepo{missing: []string{"emp-1"}}
	hol := &stubHolidayRepo{isHoliday: true}

	err := newTestMarker(att, &stubLeaveRepo{}, hol).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, att.created)
}

func TestAbsentMarkerToleratesConcurrentPunchIn(t *testing.T) {
	t.Parallel()

	att := &stubAttendanceRepo{
		missing:   []string{"emp-1", "emp-2"},
		createErr: map[string]error{"emp-1": attendance.ErrAlreadyCheckedIn},
	}

	err := newTestMarker(att, &stubLeaveRepo{}, &stubHolidayRepo{}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, att.created, 1)
	assert.Equal(t, "emp-2", att.created[0].EmployeeID)
}
