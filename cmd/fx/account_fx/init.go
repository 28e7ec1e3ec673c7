package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagym/internal/repositories"
	"alphagym/internal/services"
	mem "alphagym/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideIdentityRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideIdentityRepo(db *gorm.DB) repositories.IdentityRepository {
	return repositories.NewIdentityRepository(db)
}

func provideAccountService(
	identityRepo repositories.IdentityRepository,
	accountRepo repositories.AccountRepository,
	revoked mem.RevokedTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(identityRepo, accountRepo, revoked)
}
