package request_models

import "github.com/julfkar-mu/khidmat/pkg/utils"

// RecordPaymentRequest captures a membership-fee event. PaidAt is an
// optional "YYYY-MM-DD" date; it defaults to the time of recording.
type RecordPaymentRequest struct {
	MemberID int64       `json:"member_id" binding:"required"`
	Amount   utils.Money `json:"amount"`
	PaidAt   string      `json:"payment_date"`
}

type RecordDonationRequest struct {
	BeneficiaryName string      `json:"beneficiary_name"`
	ContactNo       string      `json:"contact_no"`
	Amount          utils.Money `json:"amount"`
	DonatedAt       string      `json:"donation_date"`
}
