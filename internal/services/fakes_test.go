package services

import (
	"context"
	"sort"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// In-memory repository fakes mirroring the storage contracts: inserts
// assign sequential ids, list methods apply the documented orderings.

type fakeAdminRepo struct {
	admins []dbm.Admin
}

func (f *fakeAdminRepo) Insert(ctx context.Context, admin *dbm.Admin) error {
	admin.ID = int64(len(f.admins) + 1)
	f.admins = append(f.admins, *admin)
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id int64) (*dbm.Admin, error) {
	for i := range f.admins {
		if f.admins[i].ID == id {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) FindByUsername(ctx context.Context, username string) (*dbm.Admin, error) {
	for i := range f.admins {
		if f.admins[i].Username == username {
			a := f.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) ListAccountAdmins(ctx context.Context) ([]dbm.Admin, error) {
	var out []dbm.Admin
	for _, a := range f.admins {
		if a.Role == dbm.RoleAccountAdmin {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

type fakeMemberRepo struct {
	members    []dbm.Member
	adminNames map[int64]string
}

func (f *fakeMemberRepo) Insert(ctx context.Context, member *dbm.Member) error {
	member.ID = int64(len(f.members) + 1)
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id int64) (*dbm.Member, error) {
	for i := range f.members {
		if f.members[i].ID == id {
			m := f.members[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) row(m dbm.Member) repositories.MemberRow {
	return repositories.MemberRow{
		ID:        m.ID,
		Name:      m.Name,
		MobileNo:  m.MobileNo,
		Address:   m.Address,
		AdminID:   m.AdminID,
		AdminName: f.adminNames[m.AdminID],
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (f *fakeMemberRepo) List(ctx context.Context, adminID int64) ([]repositories.MemberRow, error) {
	var rows []repositories.MemberRow
	for _, m := range f.members {
		if adminID != 0 && m.AdminID != adminID {
			continue
		}
		rows = append(rows, f.row(m))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt != rows[j].CreatedAt {
			return rows[i].CreatedAt > rows[j].CreatedAt
		}
		return rows[i].ID > rows[j].ID
	})
	return rows, nil
}

func (f *fakeMemberRepo) ListActive(ctx context.Context, adminID int64) ([]repositories.MemberRow, error) {
	var rows []repositories.MemberRow
	for _, m := range f.members {
		if !m.IsActive {
			continue
		}
		if adminID != 0 && m.AdminID != adminID {
			continue
		}
		rows = append(rows, f.row(m))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AdminName != rows[j].AdminName {
			return rows[i].AdminName < rows[j].AdminName
		}
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

func (f *fakeMemberRepo) SetActive(ctx context.Context, id int64, active bool) error {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members[i].IsActive = active
			return nil
		}
	}
	return nil
}

type fakeLedgerRepo struct {
	payments   []dbm.Payment
	donations  []dbm.Donation
	adminNames map[int64]string
}

func (f *fakeLedgerRepo) InsertPayment(ctx context.Context, payment *dbm.Payment) error {
	payment.ID = int64(len(f.payments) + 1)
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakeLedgerRepo) InsertDonation(ctx context.Context, donation *dbm.Donation) error {
	donation.ID = int64(len(f.donations) + 1)
	f.donations = append(f.donations, *donation)
	return nil
}

func (f *fakeLedgerRepo) ListPayments(ctx context.Context, flt repositories.PaymentFilter) ([]repositories.PaymentRow, error) {
	var rows []repositories.PaymentRow
	for _, p := range f.payments {
		if (flt.Start != 0 || flt.End != 0) && (p.PaidAt < flt.Start || p.PaidAt >= flt.End) {
			continue
		}
		if flt.AdminID != 0 && p.AdminID != flt.AdminID {
			continue
		}
		if flt.MemberID != 0 && p.MemberID != flt.MemberID {
			continue
		}
		rows = append(rows, repositories.PaymentRow{
			ID:          p.ID,
			MemberID:    p.MemberID,
			MemberName:  p.MemberName,
			ContactNo:   p.ContactNo,
			AmountMinor: p.AmountMinor,
			AdminID:     p.AdminID,
			AdminName:   f.adminNames[p.AdminID],
			PaidAt:      p.PaidAt,
			CreatedAt:   p.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PaidAt != rows[j].PaidAt {
			return rows[i].PaidAt < rows[j].PaidAt
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

func (f *fakeLedgerRepo) ListDonations(ctx context.Context, flt repositories.DonationFilter) ([]repositories.DonationRow, error) {
	var rows []repositories.DonationRow
	for _, d := range f.donations {
		if (flt.Start != 0 || flt.End != 0) && (d.DonatedAt < flt.Start || d.DonatedAt >= flt.End) {
			continue
		}
		if flt.AdminID != 0 && d.AdminID != flt.AdminID {
			continue
		}
		rows = append(rows, repositories.DonationRow{
			ID:              d.ID,
			BeneficiaryName: d.BeneficiaryName,
			ContactNo:       d.ContactNo,
			AmountMinor:     d.AmountMinor,
			AdminID:         d.AdminID,
			AdminName:       f.adminNames[d.AdminID],
			DonatedAt:       d.DonatedAt,
			CreatedAt:       d.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DonatedAt != rows[j].DonatedAt {
			return rows[i].DonatedAt < rows[j].DonatedAt
		}
		return rows[i].ID < rows[j].ID
	})
	return rows, nil
}

func (f *fakeLedgerRepo) SumPayments(ctx context.Context) (utils.Money, error) {
	var sum utils.Money
	for _, p := range f.payments {
		sum += p.AmountMinor
	}
	return sum, nil
}

func (f *fakeLedgerRepo) SumDonations(ctx context.Context) (utils.Money, error) {
	var sum utils.Money
	for _, d := range f.donations {
		sum += d.AmountMinor
	}
	return sum, nil
}

// fixture wires the fakes into real services with a small standing cast:
// one master admin and two account admins.
type fixture struct {
	admins  *fakeAdminRepo
	members *fakeMemberRepo
	ledger  *fakeLedgerRepo
	status  StatusService
	reports ReportService
}

func newFixture() *fixture {
	adminNames := map[int64]string{1: "master", 2: "aftab", 3: "bilal"}
	admins := &fakeAdminRepo{admins: []dbm.Admin{
		{BaseModel: dbm.BaseModel{ID: 1}, Username: "master", Role: dbm.RoleMasterAdmin},
		{BaseModel: dbm.BaseModel{ID: 2}, Username: "aftab", Role: dbm.RoleAccountAdmin},
		{BaseModel: dbm.BaseModel{ID: 3}, Username: "bilal", Role: dbm.RoleAccountAdmin},
	}}
	members := &fakeMemberRepo{adminNames: adminNames}
	ledger := &fakeLedgerRepo{adminNames: adminNames}
	status := NewStatusService(members, ledger)
	return &fixture{
		admins:  admins,
		members: members,
		ledger:  ledger,
		status:  status,
		reports: NewReportService(ledger, members, admins, status),
	}
}

func (f *fixture) addMember(name, mobile string, adminID int64, active bool) int64 {
	m := &dbm.Member{Name: name, MobileNo: mobile, AdminID: adminID, IsActive: active}
	_ = f.members.Insert(context.Background(), m)
	return m.ID
}

func (f *fixture) addPayment(memberID, adminID int64, amount utils.Money, paidAt int64) {
	member, _ := f.members.FindByID(context.Background(), memberID)
	_ = f.ledger.InsertPayment(context.Background(), &dbm.Payment{
		MemberID:    memberID,
		MemberName:  member.Name,
		ContactNo:   member.MobileNo,
		AmountMinor: amount,
		AdminID:     adminID,
		PaidAt:      paidAt,
	})
}

func (f *fixture) addDonation(name string, adminID int64, amount utils.Money, donatedAt int64) {
	_ = f.ledger.InsertDonation(context.Background(), &dbm.Donation{
		BeneficiaryName: name,
		ContactNo:       "0000000000",
		AmountMinor:     amount,
		AdminID:         adminID,
		DonatedAt:       donatedAt,
	})
}

var (
	masterCaller = Caller{AdminID: 1, Role: dbm.RoleMasterAdmin}
	aftabCaller  = Caller{AdminID: 2, Role: dbm.RoleAccountAdmin}
	bilalCaller  = Caller{AdminID: 3, Role: dbm.RoleAccountAdmin}
)
