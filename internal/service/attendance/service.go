package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/timeclock"
)

type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	jwtService     jwt.Service
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, jwtService jwt.Service) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		jwtService:     jwtService,
	}
}

func (s *attendanceService) PunchIn(ctx context.Context, req attendance.PunchInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	claims, err := s.jwtService.DecodeQRToken(req.QRToken)
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidQRCode
	}
	def, err := definitionFromClaims(claims)
	if err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidQRCode
	}

	now := time.Now()
	scan := timeclock.FromTime(now)
	status := Classify(scan, def)

	// A night-shift scan after midnight belongs to the day the shift
	// started on.
	date := dateOnly(now)
	if def.IsOvernight() && scan < timeclock.Noon {
		date = date.AddDate(0, 0, -1)
	}

	shiftStart := def.Start.Clock()
	record := attendance.Attendance{
		EmployeeID:       employeeID,
		Date:             date,
		PunchIn:          &now,
		Status:           status,
		ShiftID:          &claims.ShiftID,
		ShiftName:        &claims.ShiftName,
		ShiftType:        &claims.ShiftType,
		ShiftStart:       &shiftStart,
		ConveyanceAmount: ConveyanceFor(status, def.ConveyanceAmount),
		DutyAmount:       def.DutyAmount,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(created), nil
}

func (s *attendanceService) PunchOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	workMinutes := int(now.Sub(*open.PunchIn).Minutes())
	if workMinutes < 0 {
		workMinutes = 0
	}

	updated, err := s.attendanceRepo.SetPunchOut(ctx, open.ID, now, workMinutes)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(updated), nil
}

func (s *attendanceService) GetMyAttendance(ctx context.Context, month, year int) (attendance.ListAttendanceResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	filter := attendance.MonthFilter{Month: month, Year: year}
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return toListResponse(records), nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.MonthFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	var records []attendance.Attendance
	var err error
	if filter.EmployeeID != "" {
		records, err = s.attendanceRepo.ListByEmployeeMonth(ctx, filter.EmployeeID, filter.Month, filter.Year)
	} else {
		records, err = s.attendanceRepo.ListByMonth(ctx, filter.Month, filter.Year)
	}
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	return toListResponse(records), nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.ConveyanceAmount != nil {
		record.ConveyanceAmount = *req.ConveyanceAmount
	}

	updated, err := s.attendanceRepo.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(updated), nil
}

func definitionFromClaims(claims jwt.QRClaims) (shift.Definition, error) {
	start, err := timeclock.Parse(claims.Start)
	if err != nil {
		return shift.Definition{}, err
	}
	end, err := timeclock.Parse(claims.End)
	if err != nil {
		return shift.Definition{}, err
	}
	conveyance, err := decimal.NewFromString(claims.ConveyanceAmount)
	if err != nil {
		return shift.Definition{}, err
	}
	duty, err := decimal.NewFromString(claims.DutyAmount)
	if err != nil {
		return shift.Definition{}, err
	}
	def := shift.Definition{
		Type:                 shift.ShiftType(claims.ShiftType),
		Start:                start,
		End:                  end,
		GraceMinutes:         claims.GraceMinutes,
		HalfDayCutoffMinutes: claims.HalfDayCutoffMinutes,
		ConveyanceAmount:     conveyance,
		DutyAmount:           duty,
	}
	if def.Type != shift.TypeDay && def.Type != shift.TypeNight {
		return shift.Definition{}, fmt.Errorf("unknown shift type %q", claims.ShiftType)
	}
	return def, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		Date:             a.Date.Format("2006-01-02"),
		WorkMinutes:      a.WorkMinutes,
		Status:           string(a.Status),
		ShiftName:        a.ShiftName,
		ConveyanceAmount: a.ConveyanceAmount,
		DutyAmount:       a.DutyAmount,
	}
	if a.PunchIn != nil {
		in := a.PunchIn.Format(time.RFC3339)
		resp.PunchIn = &in
	}
	if a.PunchOut != nil {
		out := a.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &out
	}
	return resp
}

func toListResponse(records []attendance.Attendance) attendance.ListAttendanceResponse {
	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		data = append(data, toResponse(a))
	}
	return attendance.ListAttendanceResponse{Data: data}
}
