package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/holiday"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
)

// AbsentMarker backfills attendance rows for the previous day: employees
// with no row get absent, or leave when an approved request covers the
// date. Holidays are skipped entirely. Running it twice is harmless
// because punch-in rows already occupy the (employee, date) key.
type AbsentMarker struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	logger         *slog.Logger
}

func NewAbsentMarker(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	logger *slog.Logger,
) *AbsentMarker {
	return &AbsentMarker{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		logger:         logger,
	}
}

// Run is registered with the cron scheduler.
func (m *AbsentMarker) Run(ctx context.Context) error {
	yesterday := dateOnly(time.Now().AddDate(0, 0, -1))

	isHoliday, err := m.holidayRepo.ExistsOn(ctx, yesterday)
	if err != nil {
		return err
	}
	if isHoliday {
		return nil
	}

	missing, err := m.attendanceRepo.ListMissingForDate(ctx, yesterday)
	if err != nil {
		return err
	}

	marked := 0
	for _, employeeID := range missing {
		onLeave, err := m.leaveRepo.AnyApprovedCovering(ctx, employeeID, yesterday)
		if err != nil {
			return err
		}

		status := attendance.StatusAbsent
		if onLeave {
			status = attendance.StatusLeave
		}

		_, err = m.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:       employeeID,
			Date:             yesterday,
			Status:           status,
			ConveyanceAmount: decimal.Zero,
			DutyAmount:       decimal.Zero,
		})
		if err != nil {
			// A row that appeared since the listing is fine.
			if err == attendance.ErrAlreadyCheckedIn {
				continue
			}
			return err
		}
		marked++
	}

	if marked > 0 {
		m.logger.Info("absent marker backfilled attendance",
			slog.String("date", yesterday.Format("2006-01-02")),
			slog.Int("rows", marked))
	}
	return nil
}
