package member_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService,
)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(memberRepo repositories.MemberRepository) services.MemberService {
	return services.NewMemberService(memberRepo)
}
