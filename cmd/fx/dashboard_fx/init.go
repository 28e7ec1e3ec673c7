package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"alphagym/internal/repositories"
	"alphagym/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideAnalyticsRepo)

func provideAnalyticsRepo(db *gorm.DB) repositories.AnalyticsRepository {
	return repositories.NewAnalyticsRepository(db)
}

func provideDashboardService(
	accountRepo repositories.AccountRepository,
	membershipRepo repositories.MembershipRepository,
	gymRepo repositories.GymRepository,
	analyticsRepo repositories.AnalyticsRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(accountRepo, membershipRepo, gymRepo, analyticsRepo)
}
