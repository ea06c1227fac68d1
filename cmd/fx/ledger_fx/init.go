package ledger_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/internal/services"
)

var Module = fx.Provide(
	provideLedgerRepo, provideLedgerConfig, provideLedgerService,
)

func provideLedgerRepo(db *gorm.DB) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db)
}

func provideLedgerConfig() services.LedgerConfig {
	return services.LedgerConfig{
		AllowInactiveMemberPayments: os.Getenv("ALLOW_INACTIVE_MEMBER_PAYMENTS") == "true",
	}
}

func provideLedgerService(
	ledgerRepo repositories.LedgerRepository,
	memberRepo repositories.MemberRepository,
	cfg services.LedgerConfig,
) services.LedgerService {
	return services.NewLedgerService(ledgerRepo, memberRepo, cfg)
}
