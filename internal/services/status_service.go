package services

import (
	"context"
	"sort"

	resp "github.com/julfkar-mu/khidmat/internal/models/response_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// StatusService partitions the active members in an admin scope into
// paid and unpaid sets for a target month. Inactive members appear in
// neither set, so deactivated members never pollute dues reporting.
type StatusService interface {
	ResolveMonth(ctx context.Context, scope int64, month utils.MonthKey) ([]resp.PaidMemberReport, []resp.UnpaidMemberReport, error)
}

type statusService struct {
	memberRepo repositories.MemberRepository
	ledgerRepo repositories.LedgerRepository
}

func NewStatusService(memberRepo repositories.MemberRepository, ledgerRepo repositories.LedgerRepository) StatusService {
	return &statusService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
	}
}

func (s *statusService) ResolveMonth(ctx context.Context, scope int64, month utils.MonthKey) ([]resp.PaidMemberReport, []resp.UnpaidMemberReport, error) {
	members, err := s.memberRepo.ListActive(ctx, scope)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	start, end := month.Bounds()
	payments, err := s.ledgerRepo.ListPayments(ctx, repositories.PaymentFilter{
		Start:   start,
		End:     end,
		AdminID: scope,
	})
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	latest := latestPaymentByMember(payments)

	paid := make([]resp.PaidMemberReport, 0)
	unpaid := make([]resp.UnpaidMemberReport, 0)
	for _, m := range members {
		if p, ok := latest[m.ID]; ok {
			paid = append(paid, resp.PaidMemberReport{
				MemberName:  m.Name,
				MobileNo:    m.MobileNo,
				PaidAmount:  p.AmountMinor,
				PaymentDate: utils.FormatDateUnix(p.PaidAt),
				AdminName:   m.AdminName,
			})
		} else {
			unpaid = append(unpaid, resp.UnpaidMemberReport{
				MemberName: m.Name,
				MobileNo:   m.MobileNo,
				AdminName:  m.AdminName,
			})
		}
	}

	// Paid members are presented most recent payment first; member
	// name breaks ties. Unpaid keeps the admin-then-name order the
	// member listing already has.
	sort.SliceStable(paid, func(i, j int) bool {
		if paid[i].PaymentDate != paid[j].PaymentDate {
			return paid[i].PaymentDate > paid[j].PaymentDate
		}
		return paid[i].MemberName < paid[j].MemberName
	})

	return paid, unpaid, nil
}

// latestPaymentByMember keeps the last qualifying payment per member.
// Input rows arrive oldest-first with id as tie-break, so the final
// write for each member is its latest payment in the month.
func latestPaymentByMember(payments []repositories.PaymentRow) map[int64]repositories.PaymentRow {
	latest := make(map[int64]repositories.PaymentRow, len(payments))
	for _, p := range payments {
		latest[p.MemberID] = p
	}
	return latest
}
