package services

import (
	"context"

	resp "github.com/julfkar-mu/khidmat/internal/models/response_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

const DefaultSeriesMonths = 12

// ReportService is the single entry point the UI and export layers
// consume. Every method recomputes its view from the event store on
// demand; no derived aggregate is held between calls, so reports can
// never drift from the ledger. Admin scoping is applied here, once,
// based on the caller's role.
type ReportService interface {
	MonthlyCollectionSeries(ctx context.Context, caller Caller, monthsBack int) ([]resp.MonthlyTotal, error)
	MonthlyDonationSeries(ctx context.Context, caller Caller, monthsBack int) ([]resp.MonthlyTotal, error)
	AdminPaymentBreakdown(ctx context.Context, caller Caller, month utils.MonthKey) ([]resp.AdminPaymentReport, error)
	CollectionDetails(ctx context.Context, caller Caller, month utils.MonthKey) (*resp.CollectionDetailReport, error)
	DonationDetails(ctx context.Context, caller Caller, month utils.MonthKey) (*resp.DonationDetailReport, error)
	PoolBalance(ctx context.Context, caller Caller) (*resp.PoolBalanceReport, error)
	PaidMembers(ctx context.Context, caller Caller, month utils.MonthKey, requestedAdmin int64) ([]resp.PaidMemberReport, error)
	UnpaidMembers(ctx context.Context, caller Caller, month utils.MonthKey, requestedAdmin int64) ([]resp.UnpaidMemberReport, error)
}

type reportService struct {
	ledgerRepo repositories.LedgerRepository
	memberRepo repositories.MemberRepository
	adminRepo  repositories.AdminRepository
	status     StatusService
}

func NewReportService(
	ledgerRepo repositories.LedgerRepository,
	memberRepo repositories.MemberRepository,
	adminRepo repositories.AdminRepository,
	status StatusService,
) ReportService {
	return &reportService{
		ledgerRepo: ledgerRepo,
		memberRepo: memberRepo,
		adminRepo:  adminRepo,
		status:     status,
	}
}

// MonthlyCollectionSeries sums payments per calendar month for the
// trailing monthsBack months. Months with no payments are present with
// a zero total, and the sequence runs most-recent-first; the frontend
// reverses it for chronological charting.
func (s *reportService) MonthlyCollectionSeries(ctx context.Context, caller Caller, monthsBack int) ([]resp.MonthlyTotal, error) {
	scope, err := resolveScope(caller, 0)
	if err != nil {
		return nil, err
	}
	if monthsBack <= 0 {
		monthsBack = DefaultSeriesMonths
	}

	keys := utils.LastMonthKeys(monthsBack)
	start, _ := keys[len(keys)-1].Bounds()
	_, end := keys[0].Bounds()

	payments, err := s.ledgerRepo.ListPayments(ctx, repositories.PaymentFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sums := make(map[utils.MonthKey]utils.Money, monthsBack)
	for _, p := range payments {
		sums[utils.MonthKeyOfUnix(p.PaidAt)] += p.AmountMinor
	}
	return monthlyTotals(keys, sums), nil
}

func (s *reportService) MonthlyDonationSeries(ctx context.Context, caller Caller, monthsBack int) ([]resp.MonthlyTotal, error) {
	scope, err := resolveScope(caller, 0)
	if err != nil {
		return nil, err
	}
	if monthsBack <= 0 {
		monthsBack = DefaultSeriesMonths
	}

	keys := utils.LastMonthKeys(monthsBack)
	start, _ := keys[len(keys)-1].Bounds()
	_, end := keys[0].Bounds()

	donations, err := s.ledgerRepo.ListDonations(ctx, repositories.DonationFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sums := make(map[utils.MonthKey]utils.Money, monthsBack)
	for _, d := range donations {
		sums[utils.MonthKeyOfUnix(d.DonatedAt)] += d.AmountMinor
	}
	return monthlyTotals(keys, sums), nil
}

// AdminPaymentBreakdown reports, per account admin, the month's payment
// total plus paid/pending counts over that admin's active members.
// Admins with no members are included with zero counts; a report must
// account for every admin that exists.
func (s *reportService) AdminPaymentBreakdown(ctx context.Context, caller Caller, month utils.MonthKey) ([]resp.AdminPaymentReport, error) {
	scope, err := resolveScope(caller, 0)
	if err != nil {
		return nil, err
	}

	admins, err := s.adminRepo.ListAccountAdmins(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	members, err := s.memberRepo.ListActive(ctx, scope)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	start, end := month.Bounds()
	payments, err := s.ledgerRepo.ListPayments(ctx, repositories.PaymentFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	paidMembers := make(map[int64]bool, len(payments))
	totalByAdmin := make(map[int64]utils.Money, len(admins))
	for _, p := range payments {
		paidMembers[p.MemberID] = true
		totalByAdmin[p.AdminID] += p.AmountMinor
	}

	membersByAdmin := make(map[int64][]repositories.MemberRow, len(admins))
	for _, m := range members {
		membersByAdmin[m.AdminID] = append(membersByAdmin[m.AdminID], m)
	}

	reports := make([]resp.AdminPaymentReport, 0, len(admins))
	for _, admin := range admins {
		if scope != 0 && admin.ID != scope {
			continue
		}
		var paidCount int
		active := membersByAdmin[admin.ID]
		for _, m := range active {
			if paidMembers[m.ID] {
				paidCount++
			}
		}
		reports = append(reports, resp.AdminPaymentReport{
			AdminID:        admin.ID,
			AdminName:      admin.Username,
			PaidMembers:    paidCount,
			PendingMembers: len(active) - paidCount,
			TotalAmount:    totalByAdmin[admin.ID],
		})
	}
	return reports, nil
}

// CollectionDetails lists a month's payment line items oldest-first,
// insertion order as tie-break. The reported total is the exact sum of
// the returned line amounts.
func (s *reportService) CollectionDetails(ctx context.Context, caller Caller, month utils.MonthKey) (*resp.CollectionDetailReport, error) {
	scope, err := resolveScope(caller, 0)
	if err != nil {
		return nil, err
	}

	start, end := month.Bounds()
	payments, err := s.ledgerRepo.ListPayments(ctx, repositories.PaymentFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &resp.CollectionDetailReport{
		Month:   month,
		Details: make([]resp.CollectionDetail, 0, len(payments)),
	}
	for _, p := range payments {
		report.Total += p.AmountMinor
		report.Details = append(report.Details, resp.CollectionDetail{
			MemberName:  p.MemberName,
			ContactNo:   p.ContactNo,
			Amount:      p.AmountMinor,
			AdminName:   p.AdminName,
			PaymentDate: utils.FormatDateUnix(p.PaidAt),
		})
	}
	return report, nil
}

func (s *reportService) DonationDetails(ctx context.Context, caller Caller, month utils.MonthKey) (*resp.DonationDetailReport, error) {
	scope, err := resolveScope(caller, 0)
	if err != nil {
		return nil, err
	}

	start, end := month.Bounds()
	donations, err := s.ledgerRepo.ListDonations(ctx, repositories.DonationFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	report := &resp.DonationDetailReport{
		Month:   month,
		Details: make([]resp.DonationDetail, 0, len(donations)),
	}
	for _, d := range donations {
		report.Total += d.AmountMinor
		report.Details = append(report.Details, resp.DonationDetail{
			BeneficiaryName: d.BeneficiaryName,
			ContactNo:       d.ContactNo,
			Amount:          d.AmountMinor,
			AdminName:       d.AdminName,
			DonationDate:    utils.FormatDateUnix(d.DonatedAt),
		})
	}
	return report, nil
}

// PoolBalance derives the wallet balance by full summation over the
// entire event history. Payments and donations are both inflow; there
// is no expenditure entity.
func (s *reportService) PoolBalance(ctx context.Context, caller Caller) (*resp.PoolBalanceReport, error) {
	totalPayments, err := s.ledgerRepo.SumPayments(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalDonations, err := s.ledgerRepo.SumDonations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &resp.PoolBalanceReport{
		TotalPayments:  totalPayments,
		TotalDonations: totalDonations,
		Balance:        totalPayments + totalDonations,
	}, nil
}

func (s *reportService) PaidMembers(ctx context.Context, caller Caller, month utils.MonthKey, requestedAdmin int64) ([]resp.PaidMemberReport, error) {
	scope, err := resolveScope(caller, requestedAdmin)
	if err != nil {
		return nil, err
	}
	paid, _, err := s.status.ResolveMonth(ctx, scope, month)
	return paid, err
}

func (s *reportService) UnpaidMembers(ctx context.Context, caller Caller, month utils.MonthKey, requestedAdmin int64) ([]resp.UnpaidMemberReport, error) {
	scope, err := resolveScope(caller, requestedAdmin)
	if err != nil {
		return nil, err
	}
	_, unpaid, err := s.status.ResolveMonth(ctx, scope, month)
	return unpaid, err
}

func monthlyTotals(keys []utils.MonthKey, sums map[utils.MonthKey]utils.Money) []resp.MonthlyTotal {
	out := make([]resp.MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, resp.MonthlyTotal{Month: k, Total: sums[k]})
	}
	return out
}
