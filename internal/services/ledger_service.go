package services

import (
	"context"
	"strings"
	"time"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	req "github.com/julfkar-mu/khidmat/internal/models/request_models"
	resp "github.com/julfkar-mu/khidmat/internal/models/response_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// LedgerConfig carries the recording policy knobs.
type LedgerConfig struct {
	// AllowInactiveMemberPayments permits recording payments against a
	// deactivated member, for reconciling historical dues.
	AllowInactiveMemberPayments bool
}

// LedgerService is the write side of the event store plus the raw entry
// listings. Every successful record appends exactly one immutable row.
type LedgerService interface {
	RecordPayment(ctx context.Context, caller Caller, request req.RecordPaymentRequest) (*resp.PaymentResponse, error)
	RecordDonation(ctx context.Context, caller Caller, request req.RecordDonationRequest) (*resp.DonationResponse, error)
	ListPayments(ctx context.Context, caller Caller) ([]resp.PaymentResponse, error)
	ListDonations(ctx context.Context, caller Caller) ([]resp.DonationResponse, error)
}

type ledgerService struct {
	ledgerRepo repositories.LedgerRepository
	memberRepo repositories.MemberRepository
	cfg        LedgerConfig
}

func NewLedgerService(ledgerRepo repositories.LedgerRepository, memberRepo repositories.MemberRepository, cfg LedgerConfig) LedgerService {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

func (s *ledgerService) RecordPayment(ctx context.Context, caller Caller, request req.RecordPaymentRequest) (*resp.PaymentResponse, error) {
	if request.Amount < 0 {
		return nil, utils.ErrInvalidAmount
	}

	member, err := s.memberRepo.FindByID(ctx, request.MemberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	if !member.IsActive && !s.cfg.AllowInactiveMemberPayments {
		return nil, utils.ErrInactiveMember
	}

	paidAt, err := eventTime(request.PaidAt)
	if err != nil {
		return nil, utils.ErrInvalidMonth
	}

	payment := &dbm.Payment{
		MemberID:    member.ID,
		MemberName:  member.Name,
		ContactNo:   member.MobileNo,
		AmountMinor: request.Amount,
		AdminID:     caller.AdminID,
		PaidAt:      paidAt,
	}
	if err := s.ledgerRepo.InsertPayment(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.PaymentResponse{
		ID:          payment.ID,
		MemberID:    payment.MemberID,
		MemberName:  payment.MemberName,
		ContactNo:   payment.ContactNo,
		Amount:      payment.AmountMinor,
		AdminID:     payment.AdminID,
		PaymentDate: utils.FormatDateUnix(payment.PaidAt),
		CreatedAt:   payment.CreatedAt,
	}, nil
}

func (s *ledgerService) RecordDonation(ctx context.Context, caller Caller, request req.RecordDonationRequest) (*resp.DonationResponse, error) {
	if request.Amount < 0 {
		return nil, utils.ErrInvalidAmount
	}
	if strings.TrimSpace(request.BeneficiaryName) == "" || strings.TrimSpace(request.ContactNo) == "" {
		return nil, utils.ErrMissingField
	}

	donatedAt, err := eventTime(request.DonatedAt)
	if err != nil {
		return nil, utils.ErrInvalidMonth
	}

	donation := &dbm.Donation{
		BeneficiaryName: request.BeneficiaryName,
		ContactNo:       request.ContactNo,
		AmountMinor:     request.Amount,
		AdminID:         caller.AdminID,
		DonatedAt:       donatedAt,
	}
	if err := s.ledgerRepo.InsertDonation(ctx, donation); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.DonationResponse{
		ID:              donation.ID,
		BeneficiaryName: donation.BeneficiaryName,
		ContactNo:       donation.ContactNo,
		Amount:          donation.AmountMinor,
		AdminID:         donation.AdminID,
		DonationDate:    utils.FormatDateUnix(donation.DonatedAt),
		CreatedAt:       donation.CreatedAt,
	}, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, caller Caller) ([]resp.PaymentResponse, error) {
	rows, err := s.ledgerRepo.ListPayments(ctx, repositories.PaymentFilter{})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Storage order is oldest-first; entry listings show newest-first.
	out := make([]resp.PaymentResponse, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		out = append(out, resp.PaymentResponse{
			ID:          row.ID,
			MemberID:    row.MemberID,
			MemberName:  row.MemberName,
			ContactNo:   row.ContactNo,
			Amount:      row.AmountMinor,
			AdminID:     row.AdminID,
			AdminName:   row.AdminName,
			PaymentDate: utils.FormatDateUnix(row.PaidAt),
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func (s *ledgerService) ListDonations(ctx context.Context, caller Caller) ([]resp.DonationResponse, error) {
	rows, err := s.ledgerRepo.ListDonations(ctx, repositories.DonationFilter{})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.DonationResponse, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		out = append(out, resp.DonationResponse{
			ID:              row.ID,
			BeneficiaryName: row.BeneficiaryName,
			ContactNo:       row.ContactNo,
			Amount:          row.AmountMinor,
			AdminID:         row.AdminID,
			AdminName:       row.AdminName,
			DonationDate:    utils.FormatDateUnix(row.DonatedAt),
			CreatedAt:       row.CreatedAt,
		})
	}
	return out, nil
}

// eventTime resolves an optional "YYYY-MM-DD" event date, defaulting to
// now when absent.
func eventTime(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now().Unix(), nil
	}
	return utils.ParseDateUnix(s)
}
