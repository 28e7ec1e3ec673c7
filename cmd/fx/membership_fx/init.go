package membership_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagym/internal/repositories"
	"alphagym/internal/services"
)

var Module = fx.Provide(
	provideMembershipService, provideCoachService, provideMembershipRepo)

func provideMembershipRepo(db *gorm.DB) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(db)
}

func provideMembershipService(
	membershipRepo repositories.MembershipRepository,
	accountRepo repositories.AccountRepository,
) services.MembershipServiceInterface {
	return services.NewMembershipService(membershipRepo, accountRepo)
}

func provideCoachService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	membershipRepo repositories.MembershipRepository,
) services.CoachServiceInterface {
	return services.NewCoachService(db, accountRepo, membershipRepo)
}
