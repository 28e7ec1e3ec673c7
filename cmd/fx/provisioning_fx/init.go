package provisioning_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagym/internal/repositories"
	"alphagym/internal/services"
)

var Module = fx.Provide(
	provideProvisioningService, provideGymRepo)

func provideGymRepo(db *gorm.DB) repositories.GymRepository {
	return repositories.NewGymRepository(db)
}

func provideProvisioningService(
	identityRepo repositories.IdentityRepository,
	accountRepo repositories.AccountRepository,
	gymRepo repositories.GymRepository,
	membershipRepo repositories.MembershipRepository,
) services.ProvisioningServiceInterface {
	return services.NewProvisioningService(identityRepo, accountRepo, gymRepo, membershipRepo)
}
