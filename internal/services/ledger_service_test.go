package services

import (
	"context"
	"errors"
	"testing"

	req "github.com/julfkar-mu/khidmat/internal/models/request_models"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

func TestRecordPayment(t *testing.T) {
	fx := newFixture()
	asha := fx.addMember("Asha", "9876543210", 2, true)
	retired := fx.addMember("Retired", "9000000000", 2, false)

	svc := NewLedgerService(fx.ledger, fx.members, LedgerConfig{})

	tests := []struct {
		name    string
		request req.RecordPaymentRequest
		wantErr error
	}{
		{
			name:    "valid payment",
			request: req.RecordPaymentRequest{MemberID: asha, Amount: 20000, PaidAt: "2024-03-15"},
		},
		{
			name:    "zero amount allowed",
			request: req.RecordPaymentRequest{MemberID: asha, Amount: 0, PaidAt: "2024-03-16"},
		},
		{
			name:    "date defaults to now",
			request: req.RecordPaymentRequest{MemberID: asha, Amount: 5000},
		},
		{
			name:    "negative amount rejected",
			request: req.RecordPaymentRequest{MemberID: asha, Amount: -1},
			wantErr: utils.ErrInvalidAmount,
		},
		{
			name:    "unknown member",
			request: req.RecordPaymentRequest{MemberID: 999, Amount: 20000},
			wantErr: utils.ErrMemberNotFound,
		},
		{
			name:    "inactive member rejected",
			request: req.RecordPaymentRequest{MemberID: retired, Amount: 20000},
			wantErr: utils.ErrInactiveMember,
		},
		{
			name:    "malformed date",
			request: req.RecordPaymentRequest{MemberID: asha, Amount: 20000, PaidAt: "15-03-2024"},
			wantErr: utils.ErrInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.RecordPayment(context.Background(), aftabCaller, tt.request)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RecordPayment error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RecordPayment: %v", err)
			}
			if got.MemberName != "Asha" || got.ContactNo != "9876543210" {
				t.Errorf("response member = %q/%q, want denormalized Asha/9876543210", got.MemberName, got.ContactNo)
			}
			if got.AdminID != aftabCaller.AdminID {
				t.Errorf("response admin = %d, want caller %d", got.AdminID, aftabCaller.AdminID)
			}
		})
	}

	// Rejections leave the store untouched: only the three valid records
	// above should have landed.
	if got := len(fx.ledger.payments); got != 3 {
		t.Errorf("stored payments = %d, want 3", got)
	}
}

func TestRecordPaymentInactivePolicy(t *testing.T) {
	fx := newFixture()
	retired := fx.addMember("Retired", "9000000000", 2, false)

	svc := NewLedgerService(fx.ledger, fx.members, LedgerConfig{AllowInactiveMemberPayments: true})
	got, err := svc.RecordPayment(context.Background(), aftabCaller, req.RecordPaymentRequest{
		MemberID: retired,
		Amount:   10000,
		PaidAt:   "2024-02-01",
	})
	if err != nil {
		t.Fatalf("RecordPayment with relaxed policy: %v", err)
	}
	if got.MemberName != "Retired" {
		t.Errorf("member name = %q, want Retired", got.MemberName)
	}
}

func TestRecordDonation(t *testing.T) {
	fx := newFixture()
	svc := NewLedgerService(fx.ledger, fx.members, LedgerConfig{})

	tests := []struct {
		name    string
		request req.RecordDonationRequest
		wantErr error
	}{
		{
			name:    "valid donation",
			request: req.RecordDonationRequest{BeneficiaryName: "Well Fund", ContactNo: "9111111111", Amount: 50000, DonatedAt: "2024-03-10"},
		},
		{
			name:    "missing beneficiary",
			request: req.RecordDonationRequest{ContactNo: "9111111111", Amount: 50000},
			wantErr: utils.ErrMissingField,
		},
		{
			name:    "missing contact",
			request: req.RecordDonationRequest{BeneficiaryName: "Well Fund", Amount: 50000},
			wantErr: utils.ErrMissingField,
		},
		{
			name:    "negative amount rejected",
			request: req.RecordDonationRequest{BeneficiaryName: "Well Fund", ContactNo: "9111111111", Amount: -5},
			wantErr: utils.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.RecordDonation(context.Background(), bilalCaller, tt.request)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("RecordDonation error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RecordDonation: %v", err)
			}
			if got.AdminID != bilalCaller.AdminID {
				t.Errorf("response admin = %d, want caller %d", got.AdminID, bilalCaller.AdminID)
			}
			if got.DonationDate != "2024-03-10" {
				t.Errorf("donation date = %q, want 2024-03-10", got.DonationDate)
			}
		})
	}

	if got := len(fx.ledger.donations); got != 1 {
		t.Errorf("stored donations = %d, want 1", got)
	}
}

func TestListPaymentsNewestFirst(t *testing.T) {
	fx := newFixture()
	asha := fx.addMember("Asha", "9876543210", 2, true)

	start, _ := utils.MonthKey("2024-03").Bounds()
	fx.addPayment(asha, 2, 10000, start)
	fx.addPayment(asha, 2, 20000, start+86400)
	fx.addPayment(asha, 2, 30000, start+86400) // same day, later insert

	svc := NewLedgerService(fx.ledger, fx.members, LedgerConfig{})
	rows, err := svc.ListPayments(context.Background(), masterCaller)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := []utils.Money{30000, 20000, 10000}
	for i, w := range want {
		if rows[i].Amount != w {
			t.Errorf("rows[%d].Amount = %v, want %v", i, rows[i].Amount, w)
		}
	}
}
