package shift

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                 string          `json:"name"`
	Type                 string          `json:"type"`
	Start                string          `json:"start"` // "HH:MM"
	End                  string          `json:"end"`   // "HH:MM"
	GraceMinutes         *int            `json:"grace_minutes"`
	HalfDayCutoffMinutes *int            `json:"half_day_cutoff_minutes"`
	ConveyanceAmount     decimal.Decimal `json:"conveyance_amount"`
	DutyAmount           decimal.Decimal `json:"duty_amount"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeDay), string(TypeNight)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be day or night"})
	}
	if !validator.IsValidTimeOfDay(r.Start) {
		errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.End) {
		errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be HH:MM"})
	}
	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_minutes", Message: "grace_minutes must not be negative"})
	}
	if r.HalfDayCutoffMinutes != nil && *r.HalfDayCutoffMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "half_day_cutoff_minutes", Message: "half_day_cutoff_minutes must not be negative"})
	}
	if r.GraceMinutes != nil && r.HalfDayCutoffMinutes != nil && *r.HalfDayCutoffMinutes < *r.GraceMinutes {
		errs = append(errs, validator.ValidationError{Field: "half_day_cutoff_minutes", Message: "half_day_cutoff_minutes must not be smaller than grace_minutes"})
	}
	if r.ConveyanceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "conveyance_amount", Message: "conveyance_amount must not be negative"})
	}
	if r.DutyAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "duty_amount", Message: "duty_amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID                   string           `json:"-"`
	Name                 *string          `json:"name"`
	GraceMinutes         *int             `json:"grace_minutes"`
	HalfDayCutoffMinutes *int             `json:"half_day_cutoff_minutes"`
	ConveyanceAmount     *decimal.Decimal `json:"conveyance_amount"`
	DutyAmount           *decimal.Decimal `json:"duty_amount"`
	IsActive             *bool            `json:"is_active"`
}

type ShiftResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Type                 string          `json:"type"`
	Start                string          `json:"start"`
	End                  string          `json:"end"`
	GraceMinutes         int             `json:"grace_minutes"`
	HalfDayCutoffMinutes int             `json:"half_day_cutoff_minutes"`
	ConveyanceAmount     decimal.Decimal `json:"conveyance_amount"`
	DutyAmount           decimal.Decimal `json:"duty_amount"`
	IsActive             bool            `json:"is_active"`
}

type QRTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
