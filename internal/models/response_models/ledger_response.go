package response_models

import "github.com/julfkar-mu/khidmat/pkg/utils"

type PaymentResponse struct {
	ID          int64       `json:"id"`
	MemberID    int64       `json:"member_id"`
	MemberName  string      `json:"member_name"`
	ContactNo   string      `json:"contact_no"`
	Amount      utils.Money `json:"amount"`
	AdminID     int64       `json:"admin_id"`
	AdminName   string      `json:"admin_name,omitempty"`
	PaymentDate string      `json:"payment_date"`
	CreatedAt   int64       `json:"created_at"`
}

type DonationResponse struct {
	ID              int64       `json:"id"`
	BeneficiaryName string      `json:"beneficiary_name"`
	ContactNo       string      `json:"contact_no"`
	Amount          utils.Money `json:"amount"`
	AdminID         int64       `json:"admin_id"`
	AdminName       string      `json:"admin_name,omitempty"`
	DonationDate    string      `json:"donation_date"`
	CreatedAt       int64       `json:"created_at"`
}
