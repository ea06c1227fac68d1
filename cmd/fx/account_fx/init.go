package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAccountService,
)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAccountService(adminRepo repositories.AdminRepository) services.AccountService {
	return services.NewAccountService(adminRepo)
}
