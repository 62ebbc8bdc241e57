package shift

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/timeclock"
)

type shiftService struct {
	shiftRepo  shift.ShiftRepository
	jwtService jwt.Service
	defaults   config.ShiftConfig
}

func NewShiftService(shiftRepo shift.ShiftRepository, jwtService jwt.Service, defaults config.ShiftConfig) shift.ShiftService {
	return &shiftService{
		shiftRepo:  shiftRepo,
		jwtService: jwtService,
		defaults:   defaults,
	}
}

func (s *shiftService) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, err := timeclock.Parse(req.Start)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	end, err := timeclock.Parse(req.End)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	grace := s.defaults.GraceMinutes
	if req.GraceMinutes != nil {
		grace = *req.GraceMinutes
	}
	cutoff := s.defaults.HalfDayCutoffMinutes
	if req.HalfDayCutoffMinutes != nil {
		cutoff = *req.HalfDayCutoffMinutes
	}

	created, err := s.shiftRepo.Create(ctx, shift.Template{
		Name: req.Name,
		Definition: shift.Definition{
			Type:                 shift.ShiftType(req.Type),
			Start:                start,
			End:                  end,
			GraceMinutes:         grace,
			HalfDayCutoffMinutes: cutoff,
			ConveyanceAmount:     req.ConveyanceAmount,
			DutyAmount:           req.DutyAmount,
		},
		IsActive: true,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(created), nil
}

func (s *shiftService) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	t, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(t), nil
}

func (s *shiftService) List(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	templates, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]shift.ShiftResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toResponse(t))
	}
	return out, nil
}

func (s *shiftService) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	t, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.GraceMinutes != nil {
		t.Definition.GraceMinutes = *req.GraceMinutes
	}
	if req.HalfDayCutoffMinutes != nil {
		t.Definition.HalfDayCutoffMinutes = *req.HalfDayCutoffMinutes
	}
	if req.ConveyanceAmount != nil {
		t.Definition.ConveyanceAmount = *req.ConveyanceAmount
	}
	if req.DutyAmount != nil {
		t.Definition.DutyAmount = *req.DutyAmount
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, t); err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(t), nil
}

func (s *shiftService) Delete(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// IssueQRToken signs the template's current definition into a QR
// payload. Scans carry the definition with them, so a later template
// edit never rewrites what an already-issued code means.
func (s *shiftService) IssueQRToken(ctx context.Context, id string) (shift.QRTokenResponse, error) {
	t, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.QRTokenResponse{}, err
	}
	if !t.IsActive {
		return shift.QRTokenResponse{}, shift.ErrShiftInactive
	}

	token, expiresAt, err := s.jwtService.GenerateQRToken(jwt.QRClaims{
		ShiftID:              t.ID,
		ShiftName:            t.Name,
		ShiftType:            string(t.Definition.Type),
		Start:                t.Definition.Start.Clock(),
		End:                  t.Definition.End.Clock(),
		GraceMinutes:         t.Definition.GraceMinutes,
		HalfDayCutoffMinutes: t.Definition.HalfDayCutoffMinutes,
		ConveyanceAmount:     t.Definition.ConveyanceAmount.String(),
		DutyAmount:           t.Definition.DutyAmount.String(),
	})
	if err != nil {
		return shift.QRTokenResponse{}, err
	}
	return shift.QRTokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func toResponse(t shift.Template) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		Type:                 string(t.Definition.Type),
		Start:                t.Definition.Start.Clock(),
		End:                  t.Definition.End.Clock(),
		GraceMinutes:         t.Definition.GraceMinutes,
		HalfDayCutoffMinutes: t.Definition.HalfDayCutoffMinutes,
		ConveyanceAmount:     t.Definition.ConveyanceAmount,
		DutyAmount:           t.Definition.DutyAmount,
		IsActive:             t.IsActive,
	}
}
