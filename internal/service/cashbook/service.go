package cashbook

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/cashbook"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

type cashbookService struct {
	cashbookRepo cashbook.CashbookRepository
}

func NewCashbookService(cashbookRepo cashbook.CashbookRepository) cashbook.CashbookService {
	return &cashbookService{cashbookRepo: cashbookRepo}
}

func (s *cashbookService) CreateEntry(ctx context.Context, req cashbook.CreateEntryRequest) (cashbook.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return cashbook.EntryResponse{}, err
	}

	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return cashbook.EntryResponse{}, err
	}

	amount, date := req.Parsed()
	created, err := s.cashbookRepo.Create(ctx, cashbook.Entry{
		Type:        cashbook.EntryType(req.Type),
		Amount:      amount,
		Description: req.Description,
		EntryDate:   date,
		CreatedBy:   identity.UserID,
	})
	if err != nil {
		return cashbook.EntryResponse{}, err
	}
	return cashbook.NewEntryResponse(created), nil
}

func (s *cashbookService) List(ctx context.Context, from, to *time.Time) (cashbook.ListEntryResponse, error) {
	entries, err := s.cashbookRepo.List(ctx, from, to)
	if err != nil {
		return cashbook.ListEntryResponse{}, err
	}
	summary, err := s.cashbookRepo.Summarize(ctx, from, to)
	if err != nil {
		return cashbook.ListEntryResponse{}, err
	}
	return cashbook.NewListEntryResponse(entries, summary), nil
}

func (s *cashbookService) PostPayrollDebit(ctx context.Context, amount decimal.Decimal, description, reference, createdBy string) error {
	_, err := s.cashbookRepo.Create(ctx, cashbook.Entry{
		Type:        cashbook.EntryDebit,
		Amount:      amount,
		Description: description,
		Reference:   &reference,
		EntryDate:   time.Now(),
		CreatedBy:   createdBy,
	})
	return err
}
