package report_fx

import (
	"go.uber.org/fx"

	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/internal/services"
)

var Module = fx.Provide(
	provideStatusService, provideReportService,
)

func provideStatusService(
	memberRepo repositories.MemberRepository,
	ledgerRepo repositories.LedgerRepository,
) services.StatusService {
	return services.NewStatusService(memberRepo, ledgerRepo)
}

func provideReportService(
	ledgerRepo repositories.LedgerRepository,
	memberRepo repositories.MemberRepository,
	adminRepo repositories.AdminRepository,
	status services.StatusService,
) services.ReportService {
	return services.NewReportService(ledgerRepo, memberRepo, adminRepo, status)
}
