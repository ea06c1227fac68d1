package response_models

import "github.com/julfkar-mu/khidmat/pkg/utils"

// Report row shapes consumed by the dashboard and PDF export. Field
// names are part of the wire contract and must not drift.

type MonthlyTotal struct {
	Month utils.MonthKey `json:"month"`
	Total utils.Money    `json:"total"`
}

type AdminPaymentReport struct {
	AdminID        int64       `json:"admin_id"`
	AdminName      string      `json:"admin_name"`
	PaidMembers    int         `json:"paid_members"`
	PendingMembers int         `json:"pending_members"`
	TotalAmount    utils.Money `json:"total_amount"`
}

type PaidMemberReport struct {
	MemberName  string      `json:"member_name"`
	MobileNo    string      `json:"mobile_no"`
	PaidAmount  utils.Money `json:"paid_amount"`
	PaymentDate string      `json:"payment_date"`
	AdminName   string      `json:"admin_name"`
}

type UnpaidMemberReport struct {
	MemberName string `json:"member_name"`
	MobileNo   string `json:"mobile_no"`
	AdminName  string `json:"admin_name"`
}

type CollectionDetail struct {
	MemberName  string      `json:"member_name"`
	ContactNo   string      `json:"contact_no"`
	Amount      utils.Money `json:"amount"`
	AdminName   string      `json:"admin_name"`
	PaymentDate string      `json:"payment_date"`
}

type CollectionDetailReport struct {
	Month   utils.MonthKey     `json:"month"`
	Total   utils.Money        `json:"total"`
	Details []CollectionDetail `json:"details"`
}

type DonationDetail struct {
	BeneficiaryName string      `json:"beneficiary_name"`
	ContactNo       string      `json:"contact_no"`
	Amount          utils.Money `json:"amount"`
	AdminName       string      `json:"admin_name"`
	DonationDate    string      `json:"donation_date"`
}

type DonationDetailReport struct {
	Month   utils.MonthKey   `json:"month"`
	Total   utils.Money      `json:"total"`
	Details []DonationDetail `json:"details"`
}

type PoolBalanceReport struct {
	TotalPayments  utils.Money `json:"total_payments"`
	TotalDonations utils.Money `json:"total_donations"`
	Balance        utils.Money `json:"balance"`
}
